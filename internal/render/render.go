package render

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/olgkv/taskboard/internal/domain"
)

type Card struct {
	domain.Task
	Urgency domain.Urgency
}

// ColorClass is the visual class the page uses for the card's urgency.
func (c Card) ColorClass() string {
	switch c.Urgency {
	case domain.UrgencyOverdue:
		return "bg-danger"
	case domain.UrgencyDueSoon:
		return "bg-warning"
	default:
		return "bg-success"
	}
}

type Lane struct {
	ID     string
	Title  string
	Status domain.Status
	// BodyID is the element id of the lane's card container.
	BodyID string
	Cards  []Card
}

type Board struct {
	Today time.Time
	Lanes []Lane
}

// Lane returns the lane holding tasks with status, or nil.
func (b Board) Lane(status domain.Status) *Lane {
	for i := range b.Lanes {
		if b.Lanes[i].Status == status {
			return &b.Lanes[i]
		}
	}
	return nil
}

func emptyLanes() []Lane {
	return []Lane{
		{ID: domain.LaneToDo, Title: "To Do", Status: domain.StatusNotStarted, BodyID: "todo-cards"},
		{ID: domain.LaneInProgress, Title: "In Progress", Status: domain.StatusInProgress, BodyID: "in-progress-cards"},
		{ID: domain.LaneDone, Title: "Done", Status: domain.StatusCompleted, BodyID: "done-cards"},
	}
}

// Build groups tasks into the three lanes, keeping their order. Tasks with a
// status outside the three lanes are left out.
func Build(tasks []domain.Task, today time.Time) Board {
	b := Board{Today: today, Lanes: emptyLanes()}
	for _, t := range tasks {
		lane := b.Lane(t.Status)
		if lane == nil {
			continue
		}
		deadline, ok := domain.ParseDate(t.Deadline, today.Location())
		urgency := domain.UrgencyNormal
		if ok {
			urgency = Classify(today, deadline)
		}
		lane.Cards = append(lane.Cards, Card{Task: t, Urgency: urgency})
	}
	return b
}

// Classify compares calendar days only. Overdue wins whenever today is past
// the deadline; today and the day before the deadline are due-soon.
func Classify(today, deadline time.Time) domain.Urgency {
	switch days := daysBetween(today, deadline); {
	case days < 0:
		return domain.UrgencyOverdue
	case days <= 1:
		return domain.UrgencyDueSoon
	default:
		return domain.UrgencyNormal
	}
}

func daysBetween(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// Renderer writes the board as HTML. Each call renders every lane from
// scratch.
type Renderer struct {
	tmpl *template.Template
	now  func() time.Time
}

func NewRenderer(now func() time.Time) (*Renderer, error) {
	if now == nil {
		now = time.Now
	}
	tmpl, err := template.New("page").Parse(pageHTML)
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	if _, err := tmpl.New("lanes").Parse(lanesHTML); err != nil {
		return nil, fmt.Errorf("parse lanes template: %w", err)
	}
	return &Renderer{tmpl: tmpl, now: now}, nil
}

// Board builds the board for tasks as of today.
func (r *Renderer) Board(tasks []domain.Task) Board {
	return Build(tasks, r.now())
}

// Page writes the full document: lanes, creation dialog and client script.
func (r *Renderer) Page(w io.Writer, tasks []domain.Task) error {
	return r.tmpl.ExecuteTemplate(w, "page", r.Board(tasks))
}

// Lanes writes only the lane container, which replaces the one on the page.
func (r *Renderer) Lanes(w io.Writer, tasks []domain.Task) error {
	return r.tmpl.ExecuteTemplate(w, "lanes", r.Board(tasks))
}
