package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/olgkv/taskboard/internal/config"
	"github.com/olgkv/taskboard/internal/httpapi"
	"github.com/olgkv/taskboard/internal/ports"
	"github.com/olgkv/taskboard/internal/render"
	"github.com/olgkv/taskboard/internal/service"
	"github.com/olgkv/taskboard/internal/storage"
)

const requestIDHeader = "X-Request-ID"

// NewServer wires application dependencies and returns the configured HTTP
// server, the task service for the shutdown summary, and a function that
// releases the storage backend.
func NewServer(ctx context.Context, cfg *config.Config) (*http.Server, *service.Service, func(), error) {
	ls, closeStorage, err := openLocalStorage(ctx, cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open storage: %w", err)
	}

	m := newMetrics()
	svc := service.New(ctx, storage.NewStore(ls))
	svc.OnMutation = func(op string) {
		m.mutations.WithLabelValues(op).Inc()
	}
	m.trackTasks(svc.Stats)

	renderer, err := render.NewRenderer(time.Now)
	if err != nil {
		closeStorage()
		return nil, nil, nil, err
	}
	h := httpapi.NewHandler(svc, renderer)

	var limiter *ipRateLimiter
	if cfg.RateLimitRPS > 0 && cfg.RateLimitBurst > 0 {
		limiter = newIPRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.RateLimitTTL)
		limiter.blocked = m.rateLimited
	}

	mux := http.NewServeMux()
	route := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, rateLimitMiddleware(limiter, loggingMiddleware(m, pattern, fn)))
	}
	route("GET /{$}", h.Index)
	route("POST /tasks", h.Submit)
	route("POST /tasks/{id}/delete", h.Delete)
	route("POST /drop", h.Drop)
	route("GET /api/tasks", h.Tasks)
	route("GET /report", h.Report)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("GET /metrics", m.handler())

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return srv, svc, closeStorage, nil
}

func openLocalStorage(ctx context.Context, cfg *config.Config) (ports.LocalStorage, func(), error) {
	switch cfg.StorageBackend {
	case config.BackendRedis:
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("parse REDIS_URL: %w", err)
		}
		rc := redis.NewClient(opts)
		if err := rc.Ping(ctx).Err(); err != nil {
			_ = rc.Close()
			return nil, nil, fmt.Errorf("ping redis: %w", err)
		}
		slog.Info("using redis storage", "addr", opts.Addr, "prefix", cfg.RedisPrefix)
		return storage.NewRedisLocalStorage(rc, cfg.RedisPrefix), func() { _ = rc.Close() }, nil

	case config.BackendPostgres:
		db, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("create database pool: %w", err)
		}
		if err := db.Ping(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("ping database: %w", err)
		}
		ls, err := storage.NewPostgresLocalStorage(ctx, db)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		slog.Info("using postgres storage")
		return ls, db.Close, nil

	default:
		slog.Info("using file storage", "path", cfg.StorageFile)
		return storage.NewFileLocalStorage(cfg.StorageFile), func() {}, nil
	}
}

func loggingMiddleware(m *metrics, route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)

		lw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(lw, r)
		if v := r.Context().Value(httpapi.TaskIDContextKey); v != nil {
			if id, ok := v.(int); ok {
				lw.taskID = id
			}
		}

		latency := time.Since(start)
		if m != nil {
			m.requests.WithLabelValues(route, strconv.Itoa(lw.statusCode)).Inc()
			m.latency.WithLabelValues(route).Observe(latency.Seconds())
		}
		slog.Info("request completed",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"task_id", lw.taskID,
			"latency_ms", latency.Milliseconds(),
			"status", lw.statusCode,
		)
	})
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
	taskID     int
}

func (lw *loggingResponseWriter) WriteHeader(code int) {
	lw.statusCode = code
	lw.ResponseWriter.WriteHeader(code)
}
