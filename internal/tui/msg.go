package tui

import (
	"github.com/runoshun/quadrant/internal/domain"
	"github.com/runoshun/quadrant/internal/usecase"
)

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgBoardLoaded is sent when a period has been fetched.
type MsgBoardLoaded struct {
	Key   domain.AddressingKey
	State *usecase.BoardState
}

func (MsgBoardLoaded) sealed() {}

// MsgMutated is sent when a mutation and its reload succeeded.
type MsgMutated struct {
	Key     domain.AddressingKey // Period that was reloaded
	State   *usecase.BoardState
	Message string // Success notification
}

func (MsgMutated) sealed() {}

// MsgError is sent when an operation fails.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgDropRejected is sent when the server refused a drop's priority change.
// Board is the board as it was when the card was released.
type MsgDropRejected struct {
	Key   domain.AddressingKey
	Board *domain.Board
	Err   error
}

func (MsgDropRejected) sealed() {}

// MsgClearToast is sent when a notification expires.
// Seq identifies the notification so a newer one is not cleared early.
type MsgClearToast struct {
	Seq int
}

func (MsgClearToast) sealed() {}

// MsgReportLoaded is sent when a report has been fetched.
type MsgReportLoaded struct {
	Title   string
	Content string // Raw Markdown
}

func (MsgReportLoaded) sealed() {}

// MsgCopied is sent after text was written to the clipboard.
type MsgCopied struct {
	Text string
}

func (MsgCopied) sealed() {}
