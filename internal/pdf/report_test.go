package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/olgkv/taskboard/internal/domain"
	"github.com/olgkv/taskboard/internal/render"
)

func TestBuildBoardReport(t *testing.T) {
	today := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	board := render.Build([]domain.Task{
		{ID: 1, Title: "Write report", Description: "quarterly numbers", Deadline: "2024-01-09", Status: domain.StatusNotStarted},
		{ID: 2, Title: "Café order", Deadline: "2024-02-01", Status: domain.StatusCompleted},
	}, today)

	data, err := BuildBoardReport(board)
	if err != nil {
		t.Fatalf("BuildBoardReport: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF")
	}
}
