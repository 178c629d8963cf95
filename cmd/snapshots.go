package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/they4kman/sweeper/game"
)

// snapshotSaver returns a game end hook writing the final board to dir
func snapshotSaver(dir string, seed int64) func(*game.Session) {
	return func(session *game.Session) {
		path, err := saveSnapshot(dir, session, seed, time.Now())
		if err != nil {
			game.Log.WithError(err).Error("could not save snapshot")
			return
		}
		game.Log.WithField("path", path).Debug("saved snapshot")
	}
}

func saveSnapshot(dir string, session *game.Session, seed int64, t time.Time) (string, error) {
	stat, err := os.Stat(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", err
		}
		if err := os.MkdirAll(dir, 0777); err != nil {
			return "", err
		}
	} else if !stat.Mode().IsDir() {
		return "", fmt.Errorf("%s is not a directory; cannot save snapshots to it", dir)
	}

	path := filepath.Join(dir, generateReplayFilename(session.State(), t))

	// Games ending in the same second would share a name
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
	if os.IsExist(err) {
		path = filepath.Join(dir, generateReplayFilename(session.State(), t.Add(time.Second)))
		file, err = os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
	}
	if err != nil {
		return "", err
	}
	defer file.Close()

	if _, err := file.WriteString(session.Snapshot(seed).Serialize()); err != nil {
		return "", err
	}
	return path, nil
}

func generateReplayFilename(state game.GameState, t time.Time) string {
	filenameBuilder := strings.Builder{}

	filenameBuilder.WriteString(t.Format("20060102_150405_"))

	var stateStr string
	switch state {
	case game.Won:
		stateStr = "win"
	case game.Lost:
		stateStr = "loss"
	case game.Abandoned:
		stateStr = "abandon"
	default:
		stateStr = "other"
	}
	filenameBuilder.WriteString(stateStr)

	filenameBuilder.WriteString(".yaml")

	return filenameBuilder.String()
}
