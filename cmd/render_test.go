package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/they4kman/sweeper/game"
	"github.com/they4kman/sweeper/scores"
)

func fixedClock() time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
}

func TestRenderBoard(t *testing.T) {
	board := game.NewBoardWithMines(3, 2, []game.Pos{{Col: 0, Row: 0}})
	session := game.NewSession(board, game.Custom, fixedClock, nil)
	session.RevealAt(2, 1)
	session.Apply(game.CellAction{Pos: game.Pos{Col: 0, Row: 0}, Kind: game.RightClick})
	session.Hover(1, 0)

	want := strings.Join([]string{
		"Mines: 0  Time: 0s  Playing",
		"     0  1  2 ",
		"  0  F [1] . ",
		"  1  #  1  . ",
		"",
	}, "\n")
	if got := renderString(session); got != want {
		t.Fatalf("render:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderLoss(t *testing.T) {
	board := game.NewBoardWithMines(2, 1, []game.Pos{{Col: 0, Row: 0}, {Col: 1, Row: 0}})
	session := game.NewSession(board, game.Custom, fixedClock, nil)
	session.RevealAt(1, 0)

	got := renderString(session)
	if !strings.Contains(got, "You lost.") {
		t.Fatalf("status missing from:\n%s", got)
	}
	if !strings.Contains(got, "  0  *  X ") {
		t.Fatalf("detonated mine not marked:\n%s", got)
	}
}

func TestPrintSummary(t *testing.T) {
	summary := scores.Summarize([]scores.Record{
		{Level: "Easy", Outcome: "won", Elapsed: 12.5},
		{Level: "Easy", Outcome: "lost", Elapsed: 2},
	}, game.Levels)

	var out bytes.Buffer
	if err := printSummary(&out, summary); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want header, 3 levels and a total:\n%s", len(lines), out.String())
	}
	for _, want := range []string{"Easy", "50%", "12.5s", "Total"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("summary missing %q:\n%s", want, out.String())
		}
	}
}
