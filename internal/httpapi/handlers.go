package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/olgkv/taskboard/internal/domain"
	pdfgen "github.com/olgkv/taskboard/internal/pdf"
	"github.com/olgkv/taskboard/internal/render"
)

type contextKey struct{ name string }

var TaskIDContextKey = &contextKey{name: "task_id"}

const maxFormBytes = 1 << 20

// TaskBoard is the task repository as seen by the handlers.
type TaskBoard interface {
	Add(title, description, deadline string) domain.Task
	Remove(id int)
	SetStatus(id int, status domain.Status)
	All() []domain.Task
}

type Handler struct {
	board    TaskBoard
	renderer *render.Renderer
}

func NewHandler(board TaskBoard, renderer *render.Renderer) *Handler {
	return &Handler{board: board, renderer: renderer}
}

// Index renders the whole page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	h.writeHTML(w, func(buf *bytes.Buffer) error {
		return h.renderer.Page(buf, h.board.All())
	})
}

// Submit creates a task from the dialog form and redirects to the fresh board.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	task := h.board.Add(r.PostFormValue("title"), r.PostFormValue("description"), r.PostFormValue("deadline"))
	withTaskID(r, task.ID)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Delete removes the task named in the path. A malformed id changes nothing.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if id, ok := parseID(r.PathValue("id")); ok {
		h.board.Remove(id)
		withTaskID(r, id)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Drop handles a finished drag: the task moves to the status of the target
// lane and the response carries the re-rendered lanes.
func (h *Handler) Drop(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if id, ok := parseID(r.PostFormValue("task_id")); ok {
		h.board.SetStatus(id, domain.StatusForLane(r.PostFormValue("lane")))
		withTaskID(r, id)
	}
	h.writeHTML(w, func(buf *bytes.Buffer) error {
		return h.renderer.Lanes(buf, h.board.All())
	})
}

// Tasks returns the current collection as JSON.
func (h *Handler) Tasks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.board.All())
}

// Report returns the board as a PDF attachment.
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	board := h.renderer.Board(h.board.All())
	data, err := pdfgen.BuildBoardReport(board)
	if err != nil {
		slog.Error("build board report", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=board-"+board.Today.Format("20060102")+".pdf")
	_, _ = w.Write(data)
}

func (h *Handler) writeHTML(w http.ResponseWriter, fn func(buf *bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		slog.Error("render board", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func parseID(s string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// withTaskID exposes the affected task to the request logger.
func withTaskID(r *http.Request, id int) {
	ctx := context.WithValue(r.Context(), TaskIDContextKey, id)
	*r = *r.WithContext(ctx)
}
