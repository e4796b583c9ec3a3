package httpstore

import (
	"net/url"
	"strconv"

	"github.com/runoshun/quadrant/internal/domain"
)

// period carries the addressing fields of a request body.
// Exactly one of Date or Year+Week is set.
type period struct {
	Date string `json:"date,omitempty"`
	Year int    `json:"year,omitempty"`
	Week int    `json:"week,omitempty"`
}

func periodOf(key domain.AddressingKey) period {
	switch k := key.(type) {
	case domain.DateKey:
		return period{Date: k.Date}
	case domain.YearWeekKey:
		return period{Year: k.Year, Week: k.Week}
	}
	return period{}
}

// query returns the addressing fields as URL parameters.
func (p period) query() url.Values {
	q := url.Values{}
	if p.Date != "" {
		q.Set("date", p.Date)
	}
	if p.Year != 0 {
		q.Set("year", strconv.Itoa(p.Year))
		q.Set("week", strconv.Itoa(p.Week))
	}
	return q
}

type createBody struct {
	period
	Title       string   `json:"title"`
	Priority    string   `json:"priority"`
	Description string   `json:"description"`
	DueDate     string   `json:"due_date,omitempty"`
	Tags        []string `json:"tags"`
}

type updateBody struct {
	Value any `json:"value,omitempty"`
	period
	Action string `json:"action"`
}

type reorderBody struct {
	period
	Order []string `json:"order"`
}

type goalBody struct {
	period
	Description string `json:"description,omitempty"`
	Action      string `json:"action,omitempty"`
}

// statusBody is the {ok, error} envelope of mutation and failure responses.
type statusBody struct {
	OK    *bool  `json:"ok"`
	Error string `json:"error"`
}

type reportBody struct {
	Content string `json:"content"`
}

// snapshotBody is the response of a period listing.
type snapshotBody struct {
	Date      string     `json:"date"`
	Tasks     []wireTask `json:"tasks"`
	Carryover []wireTask `json:"carryover"`
	Goals     []wireGoal `json:"goals"`
	Year      int        `json:"year"`
	Week      int        `json:"week"`
}

type wireTask struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Status      string   `json:"status"`
	Priority    string   `json:"priority"`
	Description string   `json:"description"`
	CreatedAt   string   `json:"created_at"`
	StartedAt   string   `json:"started_at"`
	CompletedAt string   `json:"completed_at"`
	DueDate     string   `json:"due_date"`
	Notes       string   `json:"notes"`
	Source      string   `json:"source"`
	Tags        []string `json:"tags"`
	Progress    int      `json:"progress"`
	Carryover   bool     `json:"carryover"`
}

type wireGoal struct {
	Description string `json:"description"`
	Index       int    `json:"index"`
	Completed   bool   `json:"completed"`
}

// toDomain converts a listed task. carryover is true for entries of the
// carryover list, whatever the entry's own flag says.
// A malformed source leaves Origin nil; mutations of the task then fail locally.
func (w wireTask) toDomain(carryover bool) *domain.Task {
	t := &domain.Task{
		ID:          w.ID,
		Title:       w.Title,
		Status:      domain.Status(w.Status),
		Priority:    domain.Priority(w.Priority),
		Description: w.Description,
		CreatedAt:   w.CreatedAt,
		StartedAt:   w.StartedAt,
		CompletedAt: w.CompletedAt,
		DueDate:     w.DueDate,
		Notes:       w.Notes,
		Tags:        w.Tags,
		Progress:    w.Progress,
		Carryover:   carryover || w.Carryover,
	}
	if t.Carryover {
		t.Source = w.Source
		if origin, err := domain.ParseSourceKey(w.Source); err == nil {
			t.Origin = origin
		}
	}
	return t
}

func (b snapshotBody) toDomain(key domain.AddressingKey) *domain.Snapshot {
	snap := &domain.Snapshot{Period: key}
	if _, weekly := key.(domain.YearWeekKey); weekly && b.Year > 0 && b.Week > 0 {
		snap.Period = domain.YearWeekKey{Year: b.Year, Week: b.Week}
	}
	snap.Tasks = make([]*domain.Task, 0, len(b.Tasks))
	for _, w := range b.Tasks {
		snap.Tasks = append(snap.Tasks, w.toDomain(false))
	}
	snap.Carryover = make([]*domain.Task, 0, len(b.Carryover))
	for _, w := range b.Carryover {
		snap.Carryover = append(snap.Carryover, w.toDomain(true))
	}
	for i, g := range b.Goals {
		snap.Goals = append(snap.Goals, domain.Goal{Index: i, Description: g.Description, Completed: g.Completed})
	}
	return snap
}

func reportQuery(req domain.ReportRequest) url.Values {
	q := url.Values{}
	switch req.Kind {
	case domain.ReportDaily:
		q.Set("date", req.Date.Date)
	case domain.ReportWeekly:
		q.Set("year", strconv.Itoa(req.Week.Year))
		q.Set("week", strconv.Itoa(req.Week.Week))
	case domain.ReportMonthly:
		q.Set("year", strconv.Itoa(req.Year))
		q.Set("month", strconv.Itoa(req.Month))
	case domain.ReportQuarterly:
		q.Set("year", strconv.Itoa(req.Year))
		q.Set("quarter", strconv.Itoa(req.Quarter))
	case domain.ReportRange:
		q.Set("start", req.Start.Date)
		q.Set("end", req.End.Date)
	}
	return q
}
