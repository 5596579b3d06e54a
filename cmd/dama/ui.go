// ui.go - Terminal board, mouse input and the computer's turn
package main

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lgbarn/dama-go/internal/config"
	"github.com/lgbarn/dama-go/internal/dama"
	"github.com/lgbarn/dama-go/internal/errors"
	"github.com/lgbarn/dama-go/internal/session"
)

// Board geometry in terminal cells. A square is drawn cellWidth columns wide
// and cellHeight rows tall so that it looks roughly square.
const (
	cellWidth  = 4
	cellHeight = 2
	boardLeft  = 3
	boardTop   = 2
)

var (
	darkSquare  = tcell.StyleDefault.Background(tcell.NewHexColor(0xD18B47))
	lightSquare = tcell.StyleDefault.Background(tcell.NewHexColor(0xFFCE9E))
	selectedBg  = tcell.ColorBlue
	targetBg    = tcell.ColorGreen
	labelStyle  = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	titleStyle  = tcell.StyleDefault.Bold(true)
	statusStyle = tcell.StyleDefault
)

const pieceGlyph = '●'

// postRetryDelay is the wait before reposting an aiTurn the event queue had
// no room for.
var postRetryDelay = 100 * time.Millisecond

// aiTurn is posted to the event loop when the computer's delay has passed.
type aiTurn struct{}

type ui struct {
	screen tcell.Screen
	game   *session.Game
	cfg    *config.Config

	selected *dama.Square
	targets  []dama.Move
	message  string
	buttons  tcell.ButtonMask
	aiQueued bool
	closed   atomic.Bool
}

func newUI(screen tcell.Screen, game *session.Game, cfg *config.Config) *ui {
	return &ui{screen: screen, game: game, cfg: cfg}
}

// cellAt maps a terminal position to the board square drawn there.
func cellAt(x, y int) (dama.Square, bool) {
	if x < boardLeft || y < boardTop {
		return dama.Square{}, false
	}
	sq := dama.Sq((y-boardTop)/cellHeight, (x-boardLeft)/cellWidth)
	return sq, sq.OnBoard()
}

// run draws the board and processes events until the user quits or the
// screen is finalized.
func (u *ui) run() {
	defer u.closed.Store(true)
	u.draw()
	u.scheduleAI()
	for {
		ev := u.screen.PollEvent()
		if ev == nil || !u.handle(ev) {
			return
		}
	}
}

// handle processes one event and reports whether the loop should continue.
func (u *ui) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
			return false
		}
	case *tcell.EventMouse:
		// Only the press edge counts; drags and releases repeat the mask.
		pressed := ev.Buttons()&tcell.Button1 != 0 && u.buttons&tcell.Button1 == 0
		u.buttons = ev.Buttons()
		if pressed {
			if sq, ok := cellAt(ev.Position()); ok {
				u.click(sq)
			}
		}
	case *tcell.EventInterrupt:
		if _, ok := ev.Data().(aiTurn); ok {
			u.playAI()
		}
	case *tcell.EventResize:
		u.screen.Sync()
	}
	u.draw()
	return true
}

// click handles a press on sq: a destination of the selected piece plays
// the move, anything else (re)selects.
func (u *ui) click(sq dama.Square) {
	if !u.game.IsHumanTurn() || u.game.Outcome().Over() {
		return
	}

	if u.selected != nil && u.isTarget(sq) {
		from := *u.selected
		u.clearSelection()
		m, err := u.game.MoveTo(from, sq)
		if err == nil {
			err = u.game.ApplyHumanMove(m)
		}
		if err != nil {
			u.message = err.Error()
			return
		}
		u.message = fmt.Sprintf("You played %s", m)
		u.cfg.Logf(config.Verbose, "human: %s\n", m)
		u.scheduleAI()
		return
	}

	moves, err := u.game.Select(sq)
	if err != nil {
		u.clearSelection()
		return
	}
	u.selected = &sq
	u.targets = moves
	u.message = ""
	if len(moves) == 0 {
		u.message = fmt.Sprintf("No legal move from %s", sq)
	}
}

func (u *ui) isTarget(sq dama.Square) bool {
	for _, m := range u.targets {
		if m.End() == sq {
			return true
		}
	}
	return false
}

func (u *ui) clearSelection() {
	u.selected = nil
	u.targets = nil
}

// scheduleAI posts an aiTurn event after the configured delay when the
// computer is to move.
func (u *ui) scheduleAI() {
	if u.aiQueued || u.game.IsHumanTurn() || u.game.Outcome().Over() {
		return
	}
	u.aiQueued = true
	time.AfterFunc(u.cfg.Game.AIDelay, u.postAITurn)
}

// postAITurn hands the computer's turn to the event loop, retrying while the
// event queue is full. It runs on a timer goroutine.
func (u *ui) postAITurn() {
	if u.closed.Load() {
		return
	}
	if err := u.screen.PostEvent(tcell.NewEventInterrupt(aiTurn{})); err != nil {
		u.cfg.Logf(config.Summary, "computer turn not posted: %v, retrying\n", err)
		time.AfterFunc(postRetryDelay, u.postAITurn)
	}
}

func (u *ui) playAI() {
	u.aiQueued = false
	m, err := u.game.PlayAITurn()
	switch {
	case errors.Is(err, errors.ErrNoMove):
		u.message = "The computer has no move"
	case err != nil:
		u.message = err.Error()
	default:
		u.message = fmt.Sprintf("Computer played %s", m)
		u.cfg.Logf(config.Verbose, "computer: %s\n", m)
	}
	if o := u.game.Outcome(); o.Over() {
		u.cfg.Logf(config.Summary, "game %s finished: %s after %d plies\n", u.game.ID, o, u.game.Plies())
	}
	u.scheduleAI()
}

func (u *ui) draw() {
	u.screen.Clear()
	u.drawText(0, 0, titleStyle, u.game.Title())

	b := u.game.Board()
	for row := 0; row < dama.BoardSize; row++ {
		u.drawText(0, boardTop+row*cellHeight, labelStyle, fmt.Sprint(row))
		for col := 0; col < dama.BoardSize; col++ {
			u.drawSquare(b, dama.Sq(row, col))
		}
	}
	for col := 0; col < dama.BoardSize; col++ {
		u.drawText(boardLeft+col*cellWidth+1, boardTop-1, labelStyle, fmt.Sprint(col))
	}

	bottom := boardTop + dama.BoardSize*cellHeight + 1
	u.drawText(0, bottom, statusStyle, u.game.Status())
	u.drawText(0, bottom+1, statusStyle, u.message)
	u.drawText(0, bottom+3, labelStyle, "click a piece, then a highlighted square; q quits")
	u.screen.Show()
}

func (u *ui) drawSquare(b *dama.Board, sq dama.Square) {
	style := lightSquare
	if sq.IsDark() {
		style = darkSquare
	}
	switch {
	case u.selected != nil && *u.selected == sq:
		style = style.Background(selectedBg)
	case u.isTarget(sq):
		style = style.Background(targetBg)
	}

	x0 := boardLeft + sq.Col*cellWidth
	y0 := boardTop + sq.Row*cellHeight
	for dy := 0; dy < cellHeight; dy++ {
		for dx := 0; dx < cellWidth; dx++ {
			u.screen.SetContent(x0+dx, y0+dy, ' ', nil, style)
		}
	}

	if p, ok := b.At(sq); ok {
		fg := tcell.ColorWhite
		if p.Color == dama.Dark {
			fg = tcell.ColorBlack
		}
		u.screen.SetContent(x0+cellWidth/2-1, y0, pieceGlyph, nil, style.Foreground(fg))
	}
}

func (u *ui) drawText(x, y int, style tcell.Style, s string) {
	for _, r := range s {
		u.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
