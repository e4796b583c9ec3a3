package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/runoshun/quadrant/internal/domain"
	"github.com/runoshun/quadrant/internal/testutil"
	"github.com/runoshun/quadrant/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBoard_Execute(t *testing.T) {
	// Setup
	store := newStore()
	uc := usecase.NewLoadBoard(store, &testutil.MockLogger{})

	// Execute
	out, err := uc.Execute(context.Background(), usecase.LoadBoardInput{Key: viewedWeek})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"Fetch"}, store.Methods())
	assert.Equal(t, viewedWeek, out.State.Snapshot.Period)
	assert.Equal(t, 3, out.State.Board.Len())
	assert.Equal(t, domain.Stats{Total: 3, InProgress: 2, Todo: 1}, out.State.Stats)
	assert.Equal(t, []string{"T3", "T2"}, cardIDs(out.State.Board, 2))
}

func TestLoadBoard_Execute_NoKey(t *testing.T) {
	uc := usecase.NewLoadBoard(newStore(), &testutil.MockLogger{})

	_, err := uc.Execute(context.Background(), usecase.LoadBoardInput{})

	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
}

func TestLoadBoard_Execute_FetchError(t *testing.T) {
	store := newStore()
	store.FetchErr = errors.New("boom")
	uc := usecase.NewLoadBoard(store, &testutil.MockLogger{})

	_, err := uc.Execute(context.Background(), usecase.LoadBoardInput{Key: viewedWeek})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch 2024-W07")
}

func cardIDs(b *domain.Board, quadrant int) []string {
	var ids []string
	for _, t := range b.Quadrants[quadrant].Cards() {
		ids = append(ids, t.ID)
	}
	return ids
}
