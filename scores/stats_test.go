package scores

import (
	"testing"

	"github.com/they4kman/sweeper/game"
)

func TestSummarize(t *testing.T) {
	records := []Record{
		{Level: "Easy", Outcome: "won", Elapsed: 30},
		{Level: "Easy", Outcome: "won", Elapsed: 20},
		{Level: "Easy", Outcome: "lost", Elapsed: 3},
		{Level: "Easy", Outcome: "abandoned", Elapsed: 9},
		{Level: "Hard", Outcome: "lost", Elapsed: 100},
		{Level: "Custom", Outcome: "won", Elapsed: 5},
	}

	summary := Summarize(records, game.Levels)

	if len(summary.Levels) != 4 {
		t.Fatalf("got %d level rows, want 4", len(summary.Levels))
	}
	wantOrder := []string{"Easy", "Medium", "Hard", "Custom"}
	for i, name := range wantOrder {
		if summary.Levels[i].Level != name {
			t.Errorf("row %d is %q, want %q", i, summary.Levels[i].Level, name)
		}
	}

	easy := summary.Levels[0].Statistic
	if easy.Played != 4 || easy.Won != 2 || easy.Lost != 1 || easy.Abandoned != 1 {
		t.Errorf("easy counts = %+v", easy)
	}
	if easy.BestTime != 20 || easy.AverageTime != 25 {
		t.Errorf("easy times best=%v avg=%v, want 20 and 25", easy.BestTime, easy.AverageTime)
	}
	if easy.WinPercent() != 50 {
		t.Errorf("easy win percent = %v, want 50", easy.WinPercent())
	}

	medium := summary.Levels[1].Statistic
	if medium.Played != 0 || medium.HasTimes() || medium.WinPercent() != 0 {
		t.Errorf("medium should be empty, got %+v", medium)
	}

	hard := summary.Levels[2].Statistic
	if hard.HasTimes() || hard.BestTime != 0 {
		t.Errorf("hard has no wins, got best time %v", hard.BestTime)
	}

	if summary.Total.Played != 6 || summary.Total.Won != 3 || summary.Total.Lost != 2 || summary.Total.Abandoned != 1 {
		t.Errorf("total = %+v", summary.Total)
	}
	if summary.Total.BestTime != 5 || summary.Total.AverageTime != 55.0/3 {
		t.Errorf("total times best=%v avg=%v", summary.Total.BestTime, summary.Total.AverageTime)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil, nil)
	if len(summary.Levels) != 0 || summary.Total.Played != 0 {
		t.Fatalf("empty summary = %+v", summary)
	}
}
