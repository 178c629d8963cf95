package game

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownLevel = errors.New("unknown level")

type Level int

const (
	Custom Level = iota
	Easy
	Medium
	Hard
)

// Levels lists the predefined levels, easiest first
var Levels = []Level{Easy, Medium, Hard}

type LevelInfo struct {
	Name          string
	Width, Height int
	NumMines      int
}

func (level Level) Info() LevelInfo {
	switch level {
	case Easy:
		return LevelInfo{Name: "Easy", Width: 9, Height: 9, NumMines: 10}
	case Medium:
		return LevelInfo{Name: "Medium", Width: 16, Height: 16, NumMines: 40}
	case Hard:
		return LevelInfo{Name: "Hard", Width: 30, Height: 16, NumMines: 99}
	}
	return LevelInfo{Name: "Custom"}
}

func (level Level) String() string {
	return level.Info().Name
}

func ParseLevel(name string) (Level, error) {
	for _, level := range []Level{Custom, Easy, Medium, Hard} {
		if strings.EqualFold(level.String(), name) {
			return level, nil
		}
	}
	return Custom, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
}
