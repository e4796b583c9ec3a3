// Package domain contains core board entities and interfaces.
package domain

import "math"

// Task is a task record as returned by the store.
// The board never constructs these; it only renders and mutates them.
// Fields are ordered to minimize memory padding.
type Task struct {
	Origin      AddressingKey // Parsed Source; nil for native tasks or a malformed source
	ID          string
	Title       string
	Notes       string
	Description string
	Priority    Priority
	Status      Status
	CreatedAt   string
	StartedAt   string
	CompletedAt string
	DueDate     string
	Source      string // Raw origin period, only set for carryover tasks
	Tags        []string
	Progress    int
	Carryover   bool
}

// IsNative returns true if the task belongs to the viewed period.
func (t *Task) IsNative() bool {
	return !t.Carryover
}

// Clone returns a copy that shares no slices with t.
func (t *Task) Clone() *Task {
	c := *t
	if t.Tags != nil {
		c.Tags = append([]string(nil), t.Tags...)
	}
	return &c
}

// Goal is a weekly goal, addressed by its index in the week's list.
type Goal struct {
	Description string
	Index       int
	Completed   bool
}

// Snapshot is the authoritative state of one period as fetched from the store.
type Snapshot struct {
	Period    AddressingKey
	Tasks     []*Task
	Carryover []*Task
	Goals     []Goal
}

// All returns native tasks followed by carryover tasks.
func (s *Snapshot) All() []*Task {
	all := make([]*Task, 0, len(s.Tasks)+len(s.Carryover))
	all = append(all, s.Tasks...)
	all = append(all, s.Carryover...)
	return all
}

// Stats summarizes a period's tasks.
type Stats struct {
	Total      int
	Done       int
	InProgress int
	Todo       int
	Rate       int // Completion rate in percent, rounded
}

// ComputeStats counts tasks by status. Cancelled tasks count toward Total only.
func ComputeStats(tasks []*Task) Stats {
	var s Stats
	for _, t := range tasks {
		s.Total++
		switch t.Status {
		case StatusDone:
			s.Done++
		case StatusInProgress:
			s.InProgress++
		case StatusTodo:
			s.Todo++
		case StatusCancelled:
		}
	}
	if s.Total > 0 {
		s.Rate = int(math.Round(float64(s.Done) / float64(s.Total) * 100))
	}
	return s
}
