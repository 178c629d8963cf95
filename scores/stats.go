package scores

import (
	"math"
	"sort"

	"github.com/they4kman/sweeper/game"
)

type Statistic struct {
	Played    int
	Won       int
	Lost      int
	Abandoned int

	// Times over won games only; zero when nothing was won
	BestTime    float64
	AverageTime float64
}

// WinPercent is the share of played games that were won, 0 when none were
// played
func (stat Statistic) WinPercent() float64 {
	if stat.Played == 0 {
		return 0
	}
	return 100 * float64(stat.Won) / float64(stat.Played)
}

func (stat Statistic) HasTimes() bool {
	return stat.Won > 0
}

type LevelStatistic struct {
	Level string
	Statistic
}

type Summary struct {
	Total  Statistic
	Levels []LevelStatistic
}

// Summarize tallies records per level. The given levels come first, in
// order, even when they have no records; any other level follows by name.
func Summarize(records []Record, levels []game.Level) Summary {
	byLevel := make(map[string][]Record)
	for _, record := range records {
		byLevel[record.Level] = append(byLevel[record.Level], record)
	}

	var names []string
	listed := make(map[string]bool)
	for _, level := range levels {
		names = append(names, level.String())
		listed[level.String()] = true
	}
	var others []string
	for name := range byLevel {
		if !listed[name] {
			others = append(others, name)
		}
	}
	sort.Strings(others)
	names = append(names, others...)

	summary := Summary{Total: tally(records)}
	for _, name := range names {
		summary.Levels = append(summary.Levels, LevelStatistic{Level: name, Statistic: tally(byLevel[name])})
	}
	return summary
}

func tally(records []Record) Statistic {
	stat := Statistic{BestTime: math.Inf(1)}
	totalTime := 0.0

	for _, record := range records {
		stat.Played++

		switch record.Outcome {
		case game.Won.String():
			stat.Won++
			totalTime += record.Elapsed
			stat.BestTime = math.Min(stat.BestTime, record.Elapsed)
		case game.Lost.String():
			stat.Lost++
		case game.Abandoned.String():
			stat.Abandoned++
		}
	}

	if stat.Won == 0 {
		stat.BestTime = 0
	} else {
		stat.AverageTime = totalTime / float64(stat.Won)
	}
	return stat
}
