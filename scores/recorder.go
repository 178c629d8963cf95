package scores

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/sweeper/game"
)

// Recorder returns a game-end hook that adds the session's result to store.
// Failures are logged, not returned.
func Recorder(store Store, log logrus.FieldLogger) func(*game.Session) {
	return func(session *game.Session) {
		record := NewRecord(session.Result(), time.Now())

		fields := logrus.Fields{
			"level":   record.Level,
			"outcome": record.Outcome,
			"elapsed": record.Elapsed,
		}
		if err := store.Add(record); err != nil {
			log.WithFields(fields).WithError(err).Error("failed to record score")
			return
		}
		log.WithFields(fields).Debug("recorded score")
	}
}
