package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/they4kman/sweeper/director/constraint"
	"github.com/they4kman/sweeper/director/random"
	"github.com/they4kman/sweeper/game"
)

var gameConfig = game.NewGameConfig()

var (
	directorName      = directorNone
	directorDelay     time.Duration
	snapshotPath      string
	savedSnapshotsDir string
	controlsPath      string
	scoresPath        string
	storeKind         string
	verbose           bool
)

var rootCmd = &cobra.Command{
	Use:   "sweeper",
	Short: "Play manual or computer-driven Minesweeper in the terminal",
	Long: `sweeper is a Minesweeper game which supports human- or
computer-driven playing.

Run with no arguments to play manually, typing one key or command per line
	sweeper

Use the director flag to make the computer play for you
	sweeper -d constraint --delay 200ms
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd.ErrOrStderr())
	},
	RunE: runPlay,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func configureLogging(out io.Writer) {
	game.Log.SetOutput(out)
	if verbose {
		game.Log.SetLevel(logrus.DebugLevel)
	} else {
		game.Log.SetLevel(logrus.WarnLevel)
	}
}

var (
	_ pflag.Value = (*levelValue)(nil)
	_ pflag.Value = (*directorValue)(nil)
)

type levelValue game.Level

func newLevelValue(val game.Level, p *game.Level) *levelValue {
	*p = val
	return (*levelValue)(p)
}

func (levelVal *levelValue) String() string {
	return strings.ToLower(game.Level(*levelVal).String())
}

func (levelVal *levelValue) Set(value string) error {
	level, err := game.ParseLevel(value)
	if err != nil {
		return err
	}
	*levelVal = levelValue(level)
	return nil
}

func (levelVal *levelValue) Type() string {
	return "game.Level"
}

const (
	directorNone       = "none"
	directorRandom     = "random"
	directorConstraint = "constraint"
)

var directors = map[string]func() game.Director{
	directorNone:       nil,
	directorRandom:     func() game.Director { return &random.Director{} },
	directorConstraint: func() game.Director { return &constraint.Director{} },
}

type directorValue string

func (directorVal *directorValue) String() string {
	return string(*directorVal)
}

func (directorVal *directorValue) Set(value string) error {
	if _, isValid := directors[value]; !isValid {
		return fmt.Errorf("invalid director %q (want none, random or constraint)", value)
	}
	*directorVal = directorValue(value)
	return nil
}

func (directorVal *directorValue) Type() string {
	return "director"
}

// newDirector returns the selected director, or nil to play by hand
func newDirector(name string) game.Director {
	if create := directors[name]; create != nil {
		return create()
	}
	return nil
}

func init() {
	flags := rootCmd.PersistentFlags()

	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	flags.Bool("help", false, "Help for this command")

	flags.UintVarP(&gameConfig.Width, "width", "w", 30, "Width of game board, in cells")
	flags.UintVarP(&gameConfig.Height, "height", "h", 16, "Height of game board, in cells")
	flags.UintVarP(&gameConfig.NumMines, "mines", "m", 99, "Number of mines to place in the game board")
	flags.Var(newLevelValue(game.Custom, &gameConfig.Level), "level", `Predefined board, overriding width, height and mines.
easy: 9x9, 10 mines
medium: 16x16, 40 mines
hard: 30x16, 99 mines
custom: use width, height and mines`)
	flags.Int64Var(&gameConfig.Seed, "seed", 0, "Seed for mine placement (0 picks one from the clock)")

	flags.VarP((*directorValue)(&directorName), "director", "d", `Make the computer play.
none: play by hand
random: click covered cells at random
constraint: deduce mines from the revealed numbers`)
	flags.DurationVar(&directorDelay, "delay", 0, "Pause between director actions")

	flags.StringVar(&snapshotPath, "snapshot", "", "Load the board from a snapshot file")
	flags.BoolVar(&gameConfig.LoadSnapshotFresh, "fresh", true, "Cover every cell of a loaded snapshot")
	flags.StringVar(&savedSnapshotsDir, "save-snapshots", "", "Directory to save the final board of each game to")

	flags.StringVar(&controlsPath, "controls", "", "YAML file overriding the default key bindings")
	flags.StringVar(&scoresPath, "scores", "", "Path of the score store; scores are not kept when empty")
	flags.StringVar(&storeKind, "store", "yaml", "Score store format (yaml or sqlite)")

	flags.BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(playCmd, scoresCmd)
}
