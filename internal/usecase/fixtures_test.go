package usecase_test

import (
	"github.com/runoshun/quadrant/internal/domain"
	"github.com/runoshun/quadrant/internal/testutil"
)

var viewedWeek = domain.YearWeekKey{Year: 2024, Week: 7}

// weekSnapshot is week 7 of 2024 with two native tasks and one carryover
// task from week 5.
func weekSnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		Period: viewedWeek,
		Tasks: []*domain.Task{
			{ID: "T1", Title: "ship", Priority: domain.PriorityUrgentImportant, Status: domain.StatusInProgress},
			{ID: "T3", Title: "plan", Priority: domain.PriorityNotUrgentImportant, Status: domain.StatusTodo},
		},
		Carryover: []*domain.Task{
			{
				ID: "T2", Title: "old", Priority: domain.PriorityNotUrgentImportant, Status: domain.StatusInProgress,
				Carryover: true, Source: "2024-W05", Origin: domain.YearWeekKey{Year: 2024, Week: 5},
			},
		},
		Goals: []domain.Goal{{Index: 0, Description: "read"}},
	}
}

func newStore() *testutil.MockTaskStore {
	return testutil.NewMockTaskStore(weekSnapshot())
}

func findTask(s *domain.Snapshot, id string) *domain.Task {
	for _, t := range s.All() {
		if t.ID == id {
			return t
		}
	}
	return nil
}
