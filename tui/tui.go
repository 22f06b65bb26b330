// Package tui is a full-screen terminal view of a board. Select a
// piece and then a target cell to move it.
package tui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/nelhage/fieldboard/board"
	"github.com/nelhage/fieldboard/cli"
	"github.com/nelhage/fieldboard/store"
)

// reachColor marks the cells the selected piece influences.
const reachColor = tcell.ColorDarkCyan

const help = "enter: select/move  p: put  x: take  a: activity  s: save  q: quit"

type View struct {
	app    *tview.Application
	table  *tview.Table
	status *tview.TextView
	root   *tview.Flex

	ctx      context.Context
	board    *board.Board
	store    store.Store
	glyphs   *cli.Glyphs
	selected board.Coord
	overlay  bool
}

func New(b *board.Board, st store.Store, g *cli.Glyphs) *View {
	if g == nil {
		g = &cli.DefaultGlyphs
	}
	v := &View{
		app:      tview.NewApplication(),
		table:    tview.NewTable(),
		status:   tview.NewTextView(),
		ctx:      context.Background(),
		board:    b,
		store:    st,
		glyphs:   g,
		selected: board.NoCoord,
	}

	v.table.SetSelectable(true, true)
	v.table.SetBorder(true)
	v.table.SetBorders(true)
	v.table.SetTitle(" fieldboard ")
	v.table.SetTitleColor(tcell.ColorGreen)
	v.table.SetBorderColor(tcell.ColorGreen)
	v.table.SetSelectedFunc(func(row, col int) {
		if c, ok := coordAt(row, col); ok {
			v.activate(c)
		}
	})
	v.table.SetInputCapture(v.handleKey)

	v.status.SetBorder(true)
	v.status.SetTitle(" status ")

	v.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(v.table, 0, 1, true).
		AddItem(v.status, 3, 0, false)

	v.setStatus(help)
	v.draw()
	return v
}

// coordAt maps a table cell to the board; row 0 is rank 8.
func coordAt(row, col int) (board.Coord, bool) {
	return board.FromFileRank(col+1, board.Size-row)
}

func cellFor(c board.Coord) (row, col int) {
	return board.Size - c.Rank(), c.File() - 1
}

func (v *View) Run(ctx context.Context) error {
	v.ctx = ctx
	go func() {
		<-ctx.Done()
		v.app.Stop()
	}()
	return v.app.SetRoot(v.root, true).SetFocus(v.table).Run()
}

func (v *View) setStatus(format string, args ...interface{}) {
	v.status.SetText(fmt.Sprintf(format, args...))
}

func (v *View) draw() {
	snap := v.board.Snapshot()
	reach := v.board.Reach(v.selected)
	for _, c := range board.All() {
		cv := snap.At(c)
		text := v.glyphs.For(cv.Occupant)
		if v.overlay {
			text = strconv.Itoa(cv.Activity)
			if cv.Occupant != nil {
				text += v.glyphs.For(cv.Occupant)
			}
		}
		cell := tview.NewTableCell(" " + text + " ")
		cell.SetAlign(tview.AlignCenter)
		if cv.Color == board.Black {
			cell.SetBackgroundColor(tcell.ColorDarkOliveGreen)
		} else {
			cell.SetBackgroundColor(tcell.ColorBeige)
			cell.SetTextColor(tcell.ColorBlack)
		}
		if reach.Has(c) {
			cell.SetBackgroundColor(reachColor)
		}
		if c == v.selected {
			cell.SetTextColor(tcell.ColorYellow)
		}
		row, col := cellFor(c)
		v.table.SetCell(row, col, cell)
	}
	if v.overlay {
		v.table.SetTitle(" fieldboard [activity] ")
	} else {
		v.table.SetTitle(" fieldboard ")
	}
}

func (v *View) activate(c board.Coord) {
	defer v.draw()
	if v.selected == board.NoCoord {
		if v.board.At(c) == nil {
			v.setStatus("%s is empty", c)
			return
		}
		v.selected = c
		v.setStatus("selected %s", c)
		return
	}
	from := v.selected
	v.selected = board.NoCoord
	if from == c {
		v.setStatus("deselected %s", c)
		return
	}
	captured, ok := v.board.Move(from, c)
	if !ok {
		v.setStatus("illegal move %s-%s", from, c)
		return
	}
	if v.overlay {
		v.board.Refresh()
	}
	if captured != nil {
		v.setStatus("%s-%s captures %s", from, c, captured.Kind())
		return
	}
	v.setStatus("%s-%s", from, c)
}

func (v *View) cursor() (board.Coord, bool) {
	return coordAt(v.table.GetSelection())
}

func (v *View) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	if ev.Key() != tcell.KeyRune {
		return ev
	}
	switch ev.Rune() {
	case 'p':
		if c, ok := v.cursor(); ok {
			if _, err := v.board.Put(board.King, c); err != nil {
				v.setStatus("put %s: %v", c, err)
			} else {
				v.setStatus("put king on %s", c)
			}
		}
	case 'x':
		if c, ok := v.cursor(); ok {
			if p := v.board.Remove(c); p != nil {
				v.setStatus("took %s from %s", p.Kind(), c)
			} else {
				v.setStatus("%s is empty", c)
			}
			if v.selected == c {
				v.selected = board.NoCoord
			}
		}
	case 'a':
		v.overlay = !v.overlay
	case 's':
		v.save()
	case 'q':
		v.app.Stop()
		return nil
	default:
		return ev
	}
	if v.overlay {
		v.board.Refresh()
	}
	v.draw()
	return nil
}

func (v *View) save() {
	if v.store == nil {
		v.setStatus("save: %v", "no store configured")
		return
	}
	nm, err := store.SaveBoard(v.ctx, v.store, v.board)
	if err != nil {
		v.setStatus("save: %v", err)
		return
	}
	v.setStatus("saved %s", nm)
}
