package cmd

import (
	"errors"
	"testing"

	"github.com/they4kman/sweeper/director/constraint"
	"github.com/they4kman/sweeper/director/random"
	"github.com/they4kman/sweeper/game"
)

func TestLevelValue(t *testing.T) {
	var level game.Level
	value := newLevelValue(game.Custom, &level)

	if err := value.Set("Medium"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if level != game.Medium || value.String() != "medium" {
		t.Fatalf("level = %v, String = %q", level, value.String())
	}

	if err := value.Set("expert"); !errors.Is(err, game.ErrUnknownLevel) {
		t.Fatalf("Set(expert) = %v, want ErrUnknownLevel", err)
	}
	if level != game.Medium {
		t.Fatal("failed Set changed the level")
	}
}

func TestDirectorValue(t *testing.T) {
	name := directorNone
	value := (*directorValue)(&name)

	if newDirector(name) != nil {
		t.Fatal("none should play by hand")
	}

	if err := value.Set("random"); err != nil {
		t.Fatal(err)
	}
	if _, ok := newDirector(name).(*random.Director); !ok {
		t.Fatalf("random made %T", newDirector(name))
	}

	if err := value.Set("constraint"); err != nil {
		t.Fatal(err)
	}
	if _, ok := newDirector(name).(*constraint.Director); !ok {
		t.Fatalf("constraint made %T", newDirector(name))
	}

	if err := value.Set("genius"); err == nil {
		t.Fatal("expected error for an unknown director")
	}
}

func TestHeightFlagShorthand(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("height")
	if flag == nil || flag.Shorthand != "h" {
		t.Fatalf("height flag = %+v", flag)
	}
	if help := rootCmd.PersistentFlags().Lookup("help"); help == nil || help.Shorthand != "" {
		t.Fatalf("help flag = %+v", help)
	}
}
