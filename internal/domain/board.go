package domain

import (
	"fmt"
	"strconv"
)

// Quadrant holds one priority bucket as two ordered lists.
// Native tasks always render before carryover tasks.
type Quadrant struct {
	Priority  Priority
	Native    []*Task
	Carryover []*Task
}

// Len returns the number of cards in the quadrant.
func (q *Quadrant) Len() int {
	return len(q.Native) + len(q.Carryover)
}

// Cards returns the quadrant's tasks in display order.
func (q *Quadrant) Cards() []*Task {
	cards := make([]*Task, 0, q.Len())
	cards = append(cards, q.Native...)
	cards = append(cards, q.Carryover...)
	return cards
}

// Location identifies a card position on the board.
type Location struct {
	Quadrant int // Index into Board.Quadrants
	Index    int // Index into Quadrant.Cards()
}

// Board is the in-memory ordered model of the four quadrants.
// The view is a projection of it; drag operations mutate it directly.
type Board struct {
	Period    AddressingKey
	Quadrants [QuadrantCount]Quadrant
}

// NewBoard partitions a snapshot into quadrants, preserving input order.
// A task with an unknown priority label lands in the first quadrant, the
// store's own default.
func NewBoard(s *Snapshot) *Board {
	b := &Board{Period: s.Period}
	for i, p := range Priorities() {
		b.Quadrants[i].Priority = p
	}
	for _, t := range s.Tasks {
		q := &b.Quadrants[quadrantIndex(t.Priority)]
		q.Native = append(q.Native, t)
	}
	for _, t := range s.Carryover {
		q := &b.Quadrants[quadrantIndex(t.Priority)]
		q.Carryover = append(q.Carryover, t)
	}
	return b
}

func quadrantIndex(p Priority) int {
	if i := p.Index(); i >= 0 {
		return i
	}
	if parsed, err := ParsePriority(string(p)); err == nil {
		return parsed.Index()
	}
	return 0
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{Period: b.Period}
	for i := range b.Quadrants {
		src := &b.Quadrants[i]
		dst := &c.Quadrants[i]
		dst.Priority = src.Priority
		dst.Native = cloneTasks(src.Native)
		dst.Carryover = cloneTasks(src.Carryover)
	}
	return c
}

func cloneTasks(tasks []*Task) []*Task {
	if tasks == nil {
		return nil
	}
	out := make([]*Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}

// Find returns the task with the given ID and its location.
func (b *Board) Find(id string) (*Task, Location, bool) {
	for qi := range b.Quadrants {
		for ci, t := range b.Quadrants[qi].Cards() {
			if t.ID == id {
				return t, Location{Quadrant: qi, Index: ci}, true
			}
		}
	}
	return nil, Location{}, false
}

// CardAt returns the card at a location, or nil.
func (b *Board) CardAt(loc Location) *Task {
	if loc.Quadrant < 0 || loc.Quadrant >= QuadrantCount {
		return nil
	}
	cards := b.Quadrants[loc.Quadrant].Cards()
	if loc.Index < 0 || loc.Index >= len(cards) {
		return nil
	}
	return cards[loc.Index]
}

// Tasks returns every task on the board in display order.
func (b *Board) Tasks() []*Task {
	var all []*Task
	for qi := range b.Quadrants {
		all = append(all, b.Quadrants[qi].Cards()...)
	}
	return all
}

// Len returns the number of tasks on the board.
func (b *Board) Len() int {
	n := 0
	for qi := range b.Quadrants {
		n += b.Quadrants[qi].Len()
	}
	return n
}

// Move relocates a task to the given quadrant at index, where index counts the
// target quadrant's cards with the moved task already removed. Native tasks stay
// ahead of carryover tasks, so the index is clamped into the task's own group.
// The task's priority is updated to the target quadrant.
func (b *Board) Move(id string, to Priority, index int) error {
	ti := to.Index()
	if ti < 0 {
		return fmt.Errorf("move to %q: %w", to, ErrInvalidPriority)
	}
	task, loc, ok := b.Find(id)
	if !ok {
		return fmt.Errorf("move %s: %w", id, ErrTaskNotFound)
	}

	src := &b.Quadrants[loc.Quadrant]
	if task.Carryover {
		src.Carryover = removeAt(src.Carryover, loc.Index-len(src.Native))
	} else {
		src.Native = removeAt(src.Native, loc.Index)
	}

	task.Priority = to
	dst := &b.Quadrants[ti]
	if task.Carryover {
		dst.Carryover = insertAt(dst.Carryover, index-len(dst.Native), task)
	} else {
		dst.Native = insertAt(dst.Native, index, task)
	}
	return nil
}

// NativeOrder returns the IDs of all native tasks across the four quadrants
// in display order. Carryover tasks are never included.
func (b *Board) NativeOrder() []string {
	order := make([]string, 0, b.Len())
	for qi := range b.Quadrants {
		for _, t := range b.Quadrants[qi].Native {
			order = append(order, t.ID)
		}
	}
	return order
}

// View renders every quadrant.
func (b *Board) View() [QuadrantCount]QuadrantView {
	var views [QuadrantCount]QuadrantView
	for i := range b.Quadrants {
		q := &b.Quadrants[i]
		views[i] = RenderQuadrant(q.Priority, q.Native, q.Carryover)
	}
	return views
}

func removeAt(tasks []*Task, i int) []*Task {
	out := make([]*Task, 0, len(tasks))
	out = append(out, tasks[:i]...)
	return append(out, tasks[i+1:]...)
}

func insertAt(tasks []*Task, i int, t *Task) []*Task {
	i = max(0, min(i, len(tasks)))
	out := make([]*Task, 0, len(tasks)+1)
	out = append(out, tasks[:i]...)
	out = append(out, t)
	return append(out, tasks[i:]...)
}

// QuadrantView is the rendered form of one quadrant.
type QuadrantView struct {
	Priority   Priority
	CountLabel string
	Cards      []CardModel
	Count      int
	Empty      bool // True when the quadrant shows the drop-here placeholder
}

// RenderQuadrant builds a quadrant's view: native cards first, then carryover,
// each group in input order.
func RenderQuadrant(p Priority, native, carryover []*Task) QuadrantView {
	count := len(native) + len(carryover)
	v := QuadrantView{
		Priority:   p,
		Count:      count,
		CountLabel: strconv.Itoa(count),
		Empty:      count == 0,
	}
	if v.Empty {
		return v
	}
	v.Cards = make([]CardModel, 0, count)
	for _, t := range native {
		v.Cards = append(v.Cards, NewCardModel(t))
	}
	for _, t := range carryover {
		v.Cards = append(v.Cards, NewCardModel(t))
	}
	return v
}
