package tui

import (
	"github.com/runoshun/quadrant/internal/domain"
)

const (
	headerHeight  = 2 // Period line and stats line
	footerHeight  = 2 // Toast line and help line
	maxGoalLines  = 5
	minGridHeight = 8
	minWidth      = 40
)

// rect is a screen region in cells.
type rect struct {
	X, Y, W, H int
}

func (r rect) contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// cardBox is a card placed in a quadrant body.
type cardBox struct {
	ID     string
	Lines  []string
	Top    int // Absolute screen row of the first line
	Index  int // Position among the quadrant's laid-out cards
	Height int
}

// mid returns the vertical midpoint of the card.
func (c cardBox) mid() float64 {
	return float64(c.Top) + float64(c.Height)/2
}

// quadrantBox is the geometry of one quadrant.
type quadrantBox struct {
	Priority    domain.Priority
	Cards       []cardBox // Visible cards, top to bottom
	Outer       rect
	Body        rect
	Hidden      int // Cards hidden above by scrolling
	Below       int // Cards that did not fit below
	Total       int // Cards laid out, excluding a lifted card
	Placeholder int // Screen row of the drop placeholder, -1 if none
}

// midpoints returns the visible cards' midpoints.
func (q quadrantBox) midpoints() []float64 {
	mids := make([]float64, len(q.Cards))
	for i, c := range q.Cards {
		mids[i] = c.mid()
	}
	return mids
}

// insertionIndex maps a pointer row to an index among the quadrant's cards.
func (q quadrantBox) insertionIndex(y int) int {
	return q.Hidden + domain.InsertionIndex(q.midpoints(), float64(y))
}

// cardAt returns the visible card under a pointer row.
func (q quadrantBox) cardAt(y int) (cardBox, bool) {
	for _, c := range q.Cards {
		if y >= c.Top && y < c.Top+c.Height {
			return c, true
		}
	}
	return cardBox{}, false
}

// layout is the geometry of the whole board at the current size.
// View and hit-testing both read it, so what is drawn is what is clicked.
type layout struct {
	Quadrants [domain.QuadrantCount]quadrantBox
	Goals     rect
	GridTop   int
}

// goalsHeight returns the rows the weekly goal list takes.
func (m *Model) goalsHeight() int {
	if _, ok := m.key.(domain.YearWeekKey); !ok {
		return 0
	}
	n := len(m.goals())
	return 1 + max(1, min(n, maxGoalLines))
}

// gridRect returns the area shared by the four quadrants.
func (m *Model) gridRect() rect {
	top := headerHeight + m.goalsHeight()
	return rect{X: 0, Y: top, W: m.width, H: max(0, m.height-top-footerHeight)}
}

// quadrantRects splits the grid into four bordered boxes in board order.
func quadrantRects(grid rect) [domain.QuadrantCount]rect {
	leftW := grid.W / 2
	rightW := grid.W - leftW
	topH := grid.H / 2
	bottomH := grid.H - topH
	return [domain.QuadrantCount]rect{
		{X: grid.X, Y: grid.Y, W: leftW, H: topH},
		{X: grid.X + leftW, Y: grid.Y, W: rightW, H: topH},
		{X: grid.X, Y: grid.Y + topH, W: leftW, H: bottomH},
		{X: grid.X + leftW, Y: grid.Y + topH, W: rightW, H: bottomH},
	}
}

// bodyRect strips the border and the title row.
func bodyRect(outer rect) rect {
	return rect{X: outer.X + 1, Y: outer.Y + 2, W: max(0, outer.W-2), H: max(0, outer.H-3)}
}

// computeLayout places the cards of every quadrant. While a card is dragged it
// is lifted out of the board; with placeholder set, the drop row is reserved
// at the hovered index.
func (m *Model) computeLayout(placeholder bool) layout {
	grid := m.gridRect()
	l := layout{
		GridTop: grid.Y,
		Goals:   rect{X: 0, Y: headerHeight, W: m.width, H: m.goalsHeight()},
	}
	rects := quadrantRects(grid)

	session, dragging := m.drag.Session()
	target, hovering := m.drag.Target()

	var views [domain.QuadrantCount]domain.QuadrantView
	if m.board != nil {
		views = m.board.View()
	}

	for qi, r := range rects {
		body := bodyRect(r)
		q := quadrantBox{Priority: domain.Priorities()[qi], Outer: r, Body: body, Placeholder: -1}

		cards := views[qi].Cards
		if dragging {
			cards = withoutCard(cards, session.TaskID)
		}
		q.Total = len(cards)

		placeholderAt := -1
		if placeholder && dragging && hovering && target.Priority == q.Priority {
			placeholderAt = target.Index
		}

		start := min(m.scroll[qi], len(cards))
		if placeholderAt >= 0 && placeholderAt < start {
			start = placeholderAt
		}
		q.Hidden = start

		row := body.Y
		bottom := body.Y + body.H
		for i := start; i <= len(cards); i++ {
			if i == placeholderAt && row < bottom {
				q.Placeholder = row
				row++
			}
			if i == len(cards) {
				break
			}
			selected := !dragging && m.cursor.Quadrant == qi && m.cursor.Index == i && !m.focusGoals
			lines := m.cardLines(cards[i], body.W, selected)
			if row+len(lines) > bottom {
				q.Below = len(cards) - i
				break
			}
			q.Cards = append(q.Cards, cardBox{
				ID:     cards[i].Task.ID,
				Lines:  lines,
				Top:    row,
				Index:  i,
				Height: len(lines),
			})
			row += len(lines)
		}
		l.Quadrants[qi] = q
	}
	return l
}

func withoutCard(cards []domain.CardModel, id string) []domain.CardModel {
	out := make([]domain.CardModel, 0, len(cards))
	for _, c := range cards {
		if c.Task.ID != id {
			out = append(out, c)
		}
	}
	return out
}

// quadrantAt returns the index of the quadrant whose body contains the point.
func (l layout) quadrantAt(x, y int) (int, bool) {
	for qi, q := range l.Quadrants {
		if q.Body.contains(x, y) {
			return qi, true
		}
	}
	return 0, false
}

// ensureVisible adjusts the scroll offset of the cursor's quadrant so the
// selected card is fully drawn.
func (m *Model) ensureVisible() {
	if m.board == nil || m.width == 0 || m.height == 0 {
		return
	}
	qi := m.cursor.Quadrant
	if m.cursor.Index < m.scroll[qi] {
		m.scroll[qi] = m.cursor.Index
		return
	}
	for m.scroll[qi] < m.cursor.Index {
		q := m.computeLayout(false).Quadrants[qi]
		if _, ok := visibleIndex(q, m.cursor.Index); ok {
			return
		}
		m.scroll[qi]++
	}
}

func visibleIndex(q quadrantBox, index int) (cardBox, bool) {
	for _, c := range q.Cards {
		if c.Index == index {
			return c, true
		}
	}
	return cardBox{}, false
}
