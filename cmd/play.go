package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/sweeper/controls"
	"github.com/they4kman/sweeper/game"
	"github.com/they4kman/sweeper/scores"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game (the default command)",
	Long: `Play a game in the terminal. Each line of input is one of:

	<key>              a key bound in the controls (up, down, left, right, space, c, z, x)
	click C R          reveal the cell at column C, row R
	flag C R           flag or unflag the cell at column C, row R
	chord C R          reveal around the numbered cell at column C, row R
	hover C R          move the selection to column C, row R
	back               abandon the game and start a new one
	quit               abandon the game and exit
`,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	config := gameConfig

	if snapshotPath != "" {
		in, err := os.ReadFile(snapshotPath)
		if err != nil {
			return fmt.Errorf("read snapshot: %w", err)
		}
		config.Snapshot, err = game.LoadSnapshot(string(in))
		if err != nil {
			return fmt.Errorf("parse snapshot %s: %w", snapshotPath, err)
		}
	}
	if err := config.Validate(); err != nil {
		return err
	}

	keys := controls.Default()
	if controlsPath != "" {
		var err error
		if keys, err = controls.Load(controlsPath); err != nil {
			return err
		}
	}

	var onGameEnd []func(*game.Session)
	if scoresPath != "" {
		store, err := scores.Open(storeKind, scoresPath)
		if err != nil {
			return fmt.Errorf("open scores: %w", err)
		}
		defer store.Close()
		onGameEnd = append(onGameEnd, scores.Recorder(store, game.Log))
	}
	if savedSnapshotsDir != "" {
		onGameEnd = append(onGameEnd, snapshotSaver(savedSnapshotsDir, config.Seed))
	}
	config.OnGameEnd = func(session *game.Session) {
		for _, hook := range onGameEnd {
			hook(session)
		}
	}

	p := &player{
		newSession: config.NewSession,
		controls:   keys,
		out:        cmd.OutOrStdout(),
	}

	if director := newDirector(directorName); director != nil {
		seed := config.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		return p.direct(director, rand.New(rand.NewSource(seed)), directorDelay)
	}
	return p.interact(cmd.InOrStdin())
}

// player drives sessions from text input or a director, printing the board
// after every change
type player struct {
	newSession func() (*game.Session, error)
	controls   controls.Controls
	out        io.Writer

	session *game.Session
}

func (p *player) start() error {
	session, err := p.newSession()
	if err != nil {
		return err
	}
	p.session = session
	render(p.out, p.session)
	return nil
}

func (p *player) direct(director game.Director, rand *rand.Rand, delay time.Duration) error {
	if err := p.start(); err != nil {
		return err
	}

	state := game.Direct(p.session, director, rand, func(action game.CellAction) {
		fmt.Fprintln(p.out, action)
		render(p.out, p.session)
		if delay > 0 {
			time.Sleep(delay)
		}
	})

	if !state.IsTerminal() {
		game.Log.WithField("state", state.String()).Warn("director ran out of moves")
		p.session.Abandon()
		render(p.out, p.session)
	}
	return nil
}

func (p *player) interact(in io.Reader) error {
	if err := p.start(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		quit, err := p.handleLine(line)
		if err != nil {
			fmt.Fprintln(p.out, err)
			continue
		}
		if quit {
			return nil
		}
	}

	// Input ran out mid-game
	p.session.Abandon()
	return scanner.Err()
}

// handleLine applies one line of input, reporting whether the player quit
func (p *player) handleLine(line string) (quit bool, err error) {
	fields := strings.Fields(line)

	switch command := strings.ToLower(fields[0]); command {
	case "quit", "exit":
		p.session.Abandon()
		return true, nil

	case "back":
		p.session.Abandon()
		return false, p.start()

	case "click", "flag", "chord", "hover":
		if p.session.State().IsTerminal() {
			return false, errGameOver
		}

		pos, err := parsePos(fields[1:])
		if err != nil {
			return false, fmt.Errorf("%s: %w", command, err)
		}

		switch command {
		case "click":
			p.session.Apply(game.CellAction{Pos: pos, Kind: game.Click})
		case "flag":
			p.session.Apply(game.CellAction{Pos: pos, Kind: game.RightClick})
		case "chord":
			p.session.Apply(game.CellAction{Pos: pos, Kind: game.MiddleClick})
		case "hover":
			p.session.Hover(pos.Col, pos.Row)
		}

	default:
		if p.session.State().IsTerminal() {
			return false, errGameOver
		}

		action := p.controls.Decode(line)
		if action.Kind == game.None {
			return false, fmt.Errorf("unknown input %q", line)
		}
		p.session.Handle(action)
	}

	game.Log.WithFields(logrus.Fields{
		"input": line,
		"state": p.session.State().String(),
	}).Debug("handled input")

	render(p.out, p.session)
	return false, nil
}

var errGameOver = errors.New("the game is over; type back for a new game or quit to exit")

func parsePos(args []string) (game.Pos, error) {
	if len(args) != 2 {
		return game.Pos{}, fmt.Errorf("expected a column and a row, got %d arguments", len(args))
	}

	col, err := strconv.Atoi(args[0])
	if err != nil {
		return game.Pos{}, fmt.Errorf("bad column %q: %w", args[0], err)
	}
	row, err := strconv.Atoi(args[1])
	if err != nil {
		return game.Pos{}, fmt.Errorf("bad row %q: %w", args[1], err)
	}
	return game.Pos{Col: col, Row: row}, nil
}
