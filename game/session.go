package game

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Result is what a finished session reports to the score store
type Result struct {
	Level   string
	State   GameState
	Elapsed time.Duration
}

// Session wraps a Board with the cursor, the clock and the
// Playing -> Won/Lost/Abandoned state machine
type Session struct {
	board *Board
	level Level

	selection    Pos
	hasSelection bool

	state        GameState
	startTime    time.Time
	finalElapsed time.Duration

	now       func() time.Time
	onGameEnd func(*Session)
}

// NewSession starts a game on board. A nil clock means time.Now; onGameEnd,
// if set, is called once when the game reaches a terminal state.
//
// A board that has already detonated (restored from a lost game) starts the
// session in Lost with zero elapsed time, and onGameEnd is never called.
func NewSession(board *Board, level Level, clock func() time.Time, onGameEnd func(*Session)) *Session {
	if clock == nil {
		clock = time.Now
	}

	session := &Session{
		board:     board,
		level:     level,
		state:     Playing,
		startTime: clock(),
		now:       clock,
		onGameEnd: onGameEnd,
	}

	if pos, detonated := board.Detonated(); detonated {
		session.state = Lost
		Log.WithField("detonated", pos).Debug("session started on a lost board")
	}

	return session
}

func (session *Session) Board() BoardView {
	return session.board
}

func (session *Session) Level() Level {
	return session.level
}

func (session *Session) State() GameState {
	return session.state
}

func (session *Session) Selection() (Pos, bool) {
	return session.selection, session.hasSelection
}

// Elapsed is the running time of a game in progress, or the final time of a
// finished one
func (session *Session) Elapsed() time.Duration {
	if session.state.IsTerminal() {
		return session.finalElapsed
	}
	return session.now().Sub(session.startTime)
}

// FinalElapsed returns the frozen game time, once the game has ended
func (session *Session) FinalElapsed() (time.Duration, bool) {
	return session.finalElapsed, session.state.IsTerminal()
}

func (session *Session) Result() Result {
	return Result{
		Level:   session.level.String(),
		State:   session.state,
		Elapsed: session.Elapsed(),
	}
}

// Handle applies a decoded keyboard action at the current selection
func (session *Session) Handle(action Action) GameState {
	if session.state.IsTerminal() {
		return session.state
	}

	if action.Kind == MoveCursor {
		session.moveSelection(action.Direction)
		return session.state
	}

	if !session.hasSelection {
		return session.state
	}
	pos := session.selection

	switch action.Kind {
	case Clear:
		session.afterReveal(session.board.Reveal(pos.Col, pos.Row))
	case Flag:
		session.board.ToggleFlag(pos.Col, pos.Row)
	case QuestionMark:
		session.board.ToggleQuestion(pos.Col, pos.Row)
	case ClearAdjacent:
		session.afterReveal(session.board.Chord(pos.Col, pos.Row))
	}

	return session.state
}

// RevealAt reveals the cell under the pointer. Positions outside the board
// are ignored.
func (session *Session) RevealAt(col, row int) GameState {
	if session.state.IsTerminal() || !session.board.Contains(col, row) {
		return session.state
	}

	session.afterReveal(session.board.Reveal(col, row))
	return session.state
}

// Apply performs a pointer button action over a cell
func (session *Session) Apply(action CellAction) GameState {
	if session.state.IsTerminal() || !session.board.Contains(action.Col, action.Row) {
		return session.state
	}

	switch action.Kind {
	case Click:
		session.afterReveal(session.board.Reveal(action.Col, action.Row))
	case RightClick:
		session.board.ToggleFlag(action.Col, action.Row)
	case MiddleClick:
		session.afterReveal(session.board.Chord(action.Col, action.Row))
	}

	return session.state
}

// Hover moves the selection to the cell under the pointer, or drops it when
// the pointer is outside the board
func (session *Session) Hover(col, row int) {
	if !session.board.Contains(col, row) {
		session.ClearHover()
		return
	}
	session.selection = Pos{Col: col, Row: row}
	session.hasSelection = true
}

func (session *Session) ClearHover() {
	session.selection = Pos{}
	session.hasSelection = false
}

// Abandon ends a game in progress without a win or a loss
func (session *Session) Abandon() GameState {
	if !session.state.IsTerminal() {
		session.end(Abandoned)
	}
	return session.state
}

func (session *Session) moveSelection(direction Direction) {
	if !session.hasSelection {
		session.selection = Pos{}
		session.hasSelection = true
		return
	}

	dCol, dRow := direction.delta()
	col, row := session.selection.Col+dCol, session.selection.Row+dRow
	if session.board.Contains(col, row) {
		session.selection = Pos{Col: col, Row: row}
	}
}

func (session *Session) afterReveal(outcome Outcome) {
	switch {
	case outcome == Detonated:
		session.board.RevealMines()
		session.end(Lost)
	case session.board.IsComplete():
		session.end(Won)
	}
}

func (session *Session) end(state GameState) {
	session.finalElapsed = session.now().Sub(session.startTime)
	session.state = state

	Log.WithFields(logrus.Fields{
		"level":   session.level.String(),
		"state":   state.String(),
		"elapsed": session.finalElapsed,
	}).Debug("game ended")

	if session.onGameEnd != nil {
		session.onGameEnd(session)
	}
}
