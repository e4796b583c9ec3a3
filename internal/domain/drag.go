package domain

import "fmt"

// DragState is the lifecycle state of a drag gesture.
type DragState int

const (
	DragIdle DragState = iota
	DragDragging
	DragCancelled
	DragDropped
)

func (s DragState) String() string {
	switch s {
	case DragIdle:
		return "idle"
	case DragDragging:
		return "dragging"
	case DragCancelled:
		return "cancelled"
	case DragDropped:
		return "dropped"
	default:
		return "unknown"
	}
}

// DragSession is everything the drop protocol needs to know about the dragged
// card, captured at drag start. It is a value: later board changes never
// affect an in-flight drop.
type DragSession struct {
	Origin       AddressingKey // Parsed source of a carryover task
	TaskID       string
	Source       string
	FromPriority Priority
	FromIndex    int
	Carryover    bool
}

// DropTarget is where a card is released.
type DropTarget struct {
	Priority Priority
	Index    int // Insertion index among the quadrant's other cards
}

// SamePlace reports whether the target is where the session started.
func (s DragSession) SamePlace(t DropTarget) bool {
	return s.FromPriority == t.Priority && s.FromIndex == t.Index
}

// BeginDrag captures a session for the task with the given ID.
func BeginDrag(b *Board, id string) (DragSession, error) {
	task, loc, ok := b.Find(id)
	if !ok {
		return DragSession{}, fmt.Errorf("drag %s: %w", id, ErrTaskNotFound)
	}
	s := DragSession{
		TaskID:       task.ID,
		FromPriority: b.Quadrants[loc.Quadrant].Priority,
		FromIndex:    loc.Index,
		Carryover:    task.Carryover,
		Origin:       task.Origin,
		Source:       task.Source,
	}
	return s, nil
}

// Task returns the addressing fields of the dragged task, for Resolve.
func (s DragSession) Task() *Task {
	return &Task{
		ID:        s.TaskID,
		Priority:  s.FromPriority,
		Source:    s.Source,
		Origin:    s.Origin,
		Carryover: s.Carryover,
	}
}

// InsertionIndex returns where a card dropped at pointer position y lands,
// given the vertical midpoints of the other cards in top-to-bottom order.
// It is the index of the first card whose midpoint lies below the pointer,
// or len(midpoints) when the pointer is below every card.
func InsertionIndex(midpoints []float64, y float64) int {
	best := len(midpoints)
	closest := 0.0
	for i, mid := range midpoints {
		offset := mid - y
		if offset <= 0 {
			continue
		}
		if best == len(midpoints) || offset < closest {
			best = i
			closest = offset
		}
	}
	return best
}

// Drag tracks a drag gesture. The zero value is idle.
type Drag struct {
	session *DragSession
	target  *DropTarget
	state   DragState
}

// State returns the current lifecycle state.
func (d *Drag) State() DragState {
	return d.state
}

// Active reports whether a card is being dragged.
func (d *Drag) Active() bool {
	return d.state == DragDragging
}

// Session returns the current session, if dragging.
func (d *Drag) Session() (DragSession, bool) {
	if d.session == nil {
		return DragSession{}, false
	}
	return *d.session, true
}

// Target returns the hovered drop target, if any.
func (d *Drag) Target() (DropTarget, bool) {
	if d.target == nil {
		return DropTarget{}, false
	}
	return *d.target, true
}

// Begin moves the drag into the dragging state.
func (d *Drag) Begin(s DragSession) {
	d.session = &s
	d.target = &DropTarget{Priority: s.FromPriority, Index: s.FromIndex}
	d.state = DragDragging
}

// Hover updates the placeholder position. A nil target clears it.
func (d *Drag) Hover(t *DropTarget) {
	if d.state != DragDragging {
		return
	}
	d.target = t
}

// Cancel ends the drag without a drop.
func (d *Drag) Cancel() {
	if d.state != DragDragging {
		return
	}
	d.session = nil
	d.target = nil
	d.state = DragCancelled
}

// Drop ends the drag over the hovered target and returns the captured session
// and target. Without a hovered target the drag is cancelled instead.
func (d *Drag) Drop() (DragSession, DropTarget, error) {
	if d.state != DragDragging || d.session == nil {
		return DragSession{}, DropTarget{}, ErrNoDragSession
	}
	if d.target == nil {
		d.Cancel()
		return DragSession{}, DropTarget{}, ErrNoDragSession
	}
	s, t := *d.session, *d.target
	d.session = nil
	d.target = nil
	d.state = DragDropped
	return s, t, nil
}

// Reset returns the drag to idle.
func (d *Drag) Reset() {
	*d = Drag{}
}
