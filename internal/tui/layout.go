package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/unitime/unitime/internal/drag"
	"github.com/unitime/unitime/internal/types"
)

// headerHeight is the column title plus its task count
const headerHeight = 2

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

type cardBox struct {
	id   types.TaskID
	area rect
}

type columnBox struct {
	id     types.ColumnID
	index  int
	area   rect
	header rect
	cards  []cardBox
}

// layout is the rendered board and where each column and card ended up on
// screen, so pointer positions can be mapped back to board entities
type layout struct {
	view    string
	columns []columnBox
}

// hit is what sits under a screen cell
type hit struct {
	column columnBox
	task   types.TaskID
	header bool
}

func (l layout) at(x, y int) (hit, bool) {
	for _, c := range l.columns {
		if !c.area.contains(x, y) {
			continue
		}
		for _, card := range c.cards {
			if card.area.contains(x, y) {
				return hit{column: c, task: card.id}, true
			}
		}
		return hit{column: c, header: c.header.contains(x, y)}, true
	}
	return hit{}, false
}

// target converts a hit into a drop target. Outside every column it is nil.
func (l layout) target(x, y int) *drag.Target {
	h, ok := l.at(x, y)
	switch {
	case !ok:
		return nil
	case h.task != "":
		return drag.OverTask(h.task)
	default:
		return drag.OverColumn(h.column.id)
	}
}

// layout renders the visible columns left to right starting at boardTop
func (m Model) layout() layout {
	var l layout
	cols := m.store.Columns()
	if len(cols) == 0 {
		return l
	}

	active, dragging := m.drag.Active()
	end := min(len(cols), m.offset+m.visibleColumns())

	blocks := make([]string, 0, 2*(end-m.offset))
	tallest := 0
	x := 0
	for i := m.offset; i < end; i++ {
		col := cols[i]
		tasks := m.store.TasksInColumn(col.ID)
		if i > m.offset {
			blocks = append(blocks, strings.Repeat(" ", columnGap))
			x += columnGap
		}

		box := columnBox{id: col.ID, index: i}
		y := boardTop + 1 + headerHeight

		title := col.Title
		if title == "" {
			title = "(untitled)"
		}
		parts := []string{
			m.styles.columnTitle.Render(title),
			m.styles.subtle.Render(countLabel(len(tasks))),
		}
		for row, task := range tasks {
			style := m.styles.card
			switch {
			case dragging && active.Kind == drag.KindTask && active.TaskID == task.ID:
				style = m.styles.cardDragged
			case !dragging && i == m.col && row == m.row:
				style = m.styles.cardSelected
			}
			content := task.Content
			if content == "" {
				content = m.styles.subtle.Render("(empty)")
			}
			card := style.Render(content)
			h := lipgloss.Height(card)
			box.cards = append(box.cards, cardBox{
				id:   task.ID,
				area: rect{x: x + 2, y: y, w: lipgloss.Width(card), h: h},
			})
			y += h
			parts = append(parts, card)
		}

		block := m.columnStyle(i, col.ID, active, dragging).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
		w := lipgloss.Width(block)
		box.area = rect{x: x, y: boardTop, w: w}
		box.header = rect{x: x, y: boardTop, w: w, h: 1 + headerHeight}
		tallest = max(tallest, lipgloss.Height(block))

		l.columns = append(l.columns, box)
		blocks = append(blocks, block)
		x += w
	}

	// shorter columns still accept drops below their last card
	for i := range l.columns {
		l.columns[i].area.h = tallest
	}
	l.view = lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
	return l
}

func (m Model) columnStyle(i int, id types.ColumnID, active drag.Subject, dragging bool) lipgloss.Style {
	switch {
	case dragging && active.Kind == drag.KindColumn && active.ColumnID == id:
		return m.styles.columnDragged
	case dragging && active.Kind == drag.KindColumn && i == m.dropCol:
		return m.styles.columnDrop
	case !dragging && i == m.col:
		return m.styles.columnSelected
	}
	return m.styles.column
}

func countLabel(n int) string {
	if n == 1 {
		return "1 task"
	}
	return fmt.Sprintf("%d tasks", n)
}
