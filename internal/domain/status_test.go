package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Actions(t *testing.T) {
	tests := []struct {
		status Status
		want   []Action
	}{
		{StatusTodo, []Action{ActionStart, ActionDone, ActionDelete}},
		{StatusInProgress, []Action{ActionDone, ActionCancel, ActionProgress, ActionNote, ActionDelete}},
		{StatusDone, []Action{ActionDelete}},
		{StatusCancelled, []Action{ActionDelete}},
		{Status("archived"), nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.Actions())
		})
	}
}

func TestStatus_Actions_ReturnsCopy(t *testing.T) {
	actions := StatusTodo.Actions()
	actions[0] = ActionCancel

	assert.Equal(t, ActionStart, StatusTodo.Actions()[0])
}

func TestStatus_Allows_MatchesActions(t *testing.T) {
	all := []Action{ActionStart, ActionDone, ActionCancel, ActionProgress, ActionNote, ActionDelete}
	for _, s := range AllStatuses() {
		legal := s.Actions()
		for _, a := range all {
			assert.Equal(t, contains(legal, a), s.Allows(a), "%s allows %s", s, a)
		}
	}
}

func TestStatus_Allows_Priority(t *testing.T) {
	for _, s := range AllStatuses() {
		assert.True(t, s.Allows(ActionPriority), s)
	}
	assert.False(t, Status("unknown").Allows(ActionPriority))
}

func TestStatus_Next(t *testing.T) {
	tests := []struct {
		from   Status
		action Action
		want   Status
	}{
		{StatusTodo, ActionStart, StatusInProgress},
		{StatusTodo, ActionDone, StatusDone},
		{StatusInProgress, ActionDone, StatusDone},
		{StatusInProgress, ActionCancel, StatusCancelled},
		{StatusInProgress, ActionProgress, StatusInProgress},
		{StatusInProgress, ActionNote, StatusInProgress},
		{StatusDone, ActionPriority, StatusDone},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"/"+string(tt.action), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.Next(tt.action))
		})
	}
}

func TestStatus_TerminalOnlyAllowsDelete(t *testing.T) {
	for _, s := range AllStatuses() {
		if !s.IsTerminal() {
			continue
		}
		assert.Equal(t, []Action{ActionDelete}, s.Actions(), s)
	}
}

func TestStatus_Display(t *testing.T) {
	assert.Equal(t, "待办", StatusTodo.Display())
	assert.Equal(t, "进行中", StatusInProgress.Display())
	assert.Equal(t, "已完成", StatusDone.Display())
	assert.Equal(t, "已取消", StatusCancelled.Display())
	assert.Equal(t, "weird", Status("weird").Display())
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction("progress")
	require.NoError(t, err)
	assert.Equal(t, ActionProgress, a)
	assert.True(t, a.HasPayload())

	_, err = ParseAction("archive")
	assert.ErrorIs(t, err, ErrInvalidAction)
}

func TestAction_SuccessMessage(t *testing.T) {
	assert.Equal(t, "任务已开始", ActionStart.SuccessMessage())
	assert.Equal(t, "分类已更新", ActionPriority.SuccessMessage())
	assert.Equal(t, "任务已删除", ActionDelete.SuccessMessage())
}

func contains(actions []Action, a Action) bool {
	for _, x := range actions {
		if x == a {
			return true
		}
	}
	return false
}
