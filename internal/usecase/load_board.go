// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/quadrant/internal/domain"
)

// BoardState is the authoritative view of a period after a fetch.
type BoardState struct {
	Snapshot *domain.Snapshot
	Board    *domain.Board
	Stats    domain.Stats
}

// LoadBoardInput contains the parameters for loading a period.
type LoadBoardInput struct {
	Key domain.AddressingKey // Viewed period
}

// LoadBoardOutput contains the loaded board.
type LoadBoardOutput struct {
	State *BoardState
}

// LoadBoard fetches a period and partitions it into quadrants.
type LoadBoard struct {
	store  domain.TaskStore
	logger domain.Logger
}

// NewLoadBoard creates a new LoadBoard use case.
func NewLoadBoard(store domain.TaskStore, logger domain.Logger) *LoadBoard {
	return &LoadBoard{
		store:  store,
		logger: logger,
	}
}

// Execute fetches the period.
func (uc *LoadBoard) Execute(ctx context.Context, in LoadBoardInput) (*LoadBoardOutput, error) {
	if in.Key == nil {
		return nil, domain.ErrInvalidPeriod
	}
	state, err := reload(ctx, uc.store, in.Key)
	if err != nil {
		return nil, err
	}
	uc.logger.Debug("", "board", fmt.Sprintf("loaded %s: %d tasks, %d carryover",
		in.Key, len(state.Snapshot.Tasks), len(state.Snapshot.Carryover)))
	return &LoadBoardOutput{State: state}, nil
}

// reload is the single authoritative re-fetch issued after a successful mutation.
func reload(ctx context.Context, store domain.TaskStore, key domain.AddressingKey) (*BoardState, error) {
	snap, err := store.Fetch(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", key, err)
	}
	if snap.Period == nil {
		snap.Period = key
	}
	return &BoardState{
		Snapshot: snap,
		Board:    domain.NewBoard(snap),
		Stats:    domain.ComputeStats(snap.All()),
	}, nil
}
