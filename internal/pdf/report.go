package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/olgkv/taskboard/internal/render"
)

// BuildBoardReport lays the board out lane by lane, one line per task.
func BuildBoardReport(board render.Board) ([]byte, error) {
	p := gofpdf.New("P", "mm", "A4", "")
	tr := p.UnicodeTranslatorFromDescriptor("")
	p.AddPage()

	p.SetFont("Arial", "B", 14)
	p.Cell(40, 10, "Task board - "+board.Today.Format("2006-01-02"))
	p.Ln(12)

	for _, lane := range board.Lanes {
		p.SetFont("Arial", "B", 12)
		p.Cell(40, 10, fmt.Sprintf("%s (%d)", lane.Title, len(lane.Cards)))
		p.Ln(8)

		p.SetFont("Arial", "", 11)
		for _, c := range lane.Cards {
			p.Cell(40, 8, tr(fmt.Sprintf("#%d %s - due %s [%s]", c.ID, c.Title, c.Deadline, c.Urgency)))
			p.Ln(6)
			if c.Description != "" {
				p.MultiCell(0, 6, tr(c.Description), "", "L", false)
			}
		}
		p.Ln(4)
	}

	var buf bytes.Buffer
	if err := p.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
