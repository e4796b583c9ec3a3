package domain

import "slices"

// EmptyQuadrantHint is shown in a quadrant with no cards.
const EmptyQuadrantHint = "拖拽任务到此处"

// CardModel is the view model of one task card.
type CardModel struct {
	Task    *Task
	Badge   string // Carryover badge, empty for native tasks
	Actions []Action
}

// NewCardModel derives the card's legal actions and carryover badge.
func NewCardModel(t *Task) CardModel {
	c := CardModel{
		Task:    t,
		Actions: t.Status.Actions(),
	}
	if t.Carryover {
		c.Badge = "遗留 " + t.Source
	}
	return c
}

// Offers reports whether the card shows the action.
func (c CardModel) Offers(a Action) bool {
	return slices.Contains(c.Actions, a)
}

// Meta returns the card's timestamp lines in display order.
func (c CardModel) Meta() []string {
	var meta []string
	if c.Task.CreatedAt != "" {
		meta = append(meta, "创建: "+c.Task.CreatedAt)
	}
	if c.Task.StartedAt != "" {
		meta = append(meta, "开始: "+c.Task.StartedAt)
	}
	if c.Task.CompletedAt != "" {
		meta = append(meta, "完成: "+c.Task.CompletedAt)
	}
	if c.Task.DueDate != "" {
		meta = append(meta, "截止: "+c.Task.DueDate)
	}
	return meta
}
