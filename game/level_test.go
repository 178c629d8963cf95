package game

import (
	"errors"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want Level
	}{
		{"easy", Easy},
		{"Medium", Medium},
		{"HARD", Hard},
		{"custom", Custom},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.name)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}

	if _, err := ParseLevel("expert"); !errors.Is(err, ErrUnknownLevel) {
		t.Fatalf("ParseLevel(expert) error = %v, want ErrUnknownLevel", err)
	}
}

func TestLevelDimensions(t *testing.T) {
	for _, level := range Levels {
		config := NewGameConfig()
		config.Level = level
		if err := config.Validate(); err != nil {
			t.Errorf("%v: %v", level, err)
		}

		info := level.Info()
		width, height, numMines := config.Dimensions()
		if width != info.Width || height != info.Height || numMines != info.NumMines {
			t.Errorf("%v dimensions = %dx%d/%d", level, width, height, numMines)
		}
	}
}

func TestGameConfigValidate(t *testing.T) {
	config := NewGameConfig()
	if err := config.Validate(); err != nil {
		t.Fatalf("default config: %v", err)
	}

	config.Width = 0
	if err := config.Validate(); err == nil {
		t.Fatal("expected error for zero width")
	}

	config.Width, config.Height, config.NumMines = 3, 3, 9
	if err := config.Validate(); err != nil {
		t.Fatalf("every cell a mine should be allowed: %v", err)
	}
	config.NumMines = 10
	if err := config.Validate(); err == nil {
		t.Fatal("expected error for more mines than cells")
	}
}
