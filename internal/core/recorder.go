// Package core holds the pieces shared by both front ends: the runtime
// configuration and the recorder that persists finished games.
// It never imports a presentation library.
package core

import (
	"errors"
	"io"
	"io/fs"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dilemma/internal/games/dilemma"
)

// StatsStore loads and saves the lifetime statistics record.
type StatsStore interface {
	Load() (dilemma.Statistics, error)
	Save(dilemma.Statistics) error
}

// Archive keeps a copy of every completed game.
type Archive interface {
	SaveGame(dilemma.Snapshot) (string, error)
}

// Recorder folds finished games into the statistics record and the archive.
// Persistence failures are logged at debug level and never returned, so a
// broken disk cannot interrupt play.
type Recorder struct {
	stats   StatsStore
	archive Archive
	logger  *log.Logger
}

// NewRecorder creates a recorder. archive and logger may be nil.
func NewRecorder(stats StatsStore, archive Archive, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{stats: stats, archive: archive, logger: logger}
}

// Load returns the stored statistics, or the zero record when none can be read.
func (r *Recorder) Load() dilemma.Statistics {
	stats, err := r.stats.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		r.logger.Debug("statistics reset to defaults", "error", err)
	}
	return stats
}

// Record folds g into stats, saves the result and archives the game.
// An unfinished game leaves stats unchanged and is not persisted.
func (r *Recorder) Record(stats dilemma.Statistics, g *dilemma.Game) dilemma.Statistics {
	updated, err := dilemma.RecordGame(stats, g)
	if err != nil {
		r.logger.Debug("game not recorded", "error", err)
		return stats
	}

	if err := r.stats.Save(updated); err != nil {
		r.logger.Debug("statistics not saved", "error", err)
	}

	if r.archive != nil {
		id, err := r.archive.SaveGame(g.Snapshot())
		if err != nil {
			r.logger.Debug("game not archived", "error", err)
		} else {
			r.logger.Debug("game archived", "id", id)
		}
	}
	return updated
}

// Reset overwrites the record with zero statistics.
func (r *Recorder) Reset() error {
	return r.stats.Save(dilemma.Statistics{})
}
