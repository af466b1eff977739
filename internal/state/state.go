package state

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/llehouerou/broadlist/internal/errmsg"
)

const saveDebounce = 500 * time.Millisecond

// Store persists the sample list in sqlite. Saves are debounced and run on
// a timer goroutine; Close flushes the last pending save.
type Store struct {
	db     *sql.DB
	logger *slog.Logger

	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   []Entry
	dirty     bool

	// writeMu orders flushes so an older snapshot never lands last.
	writeMu sync.Mutex
}

// Open opens (creating if needed) the sqlite store at path.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := initSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}

	return newStore(conn, logger), nil
}

func newStore(conn *sql.DB, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{db: conn, logger: logger}
}

// Load returns the stored entries in list order.
func (s *Store) Load() ([]Entry, error) {
	return loadEntries(s.db)
}

// Save schedules entries to be written after a short quiet period.
// Only the latest call within the period is written.
func (s *Store) Save(entries []Entry) {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.pending = append([]Entry(nil), entries...)
	s.dirty = true

	if s.saveTimer != nil {
		s.saveTimer.Stop()
	}
	s.saveTimer = time.AfterFunc(saveDebounce, func() {
		if err := s.Flush(context.Background()); err != nil {
			s.logger.Error(errmsg.Format(errmsg.OpItemsSave, err))
		}
	})
}

// Flush writes the pending save now, if any.
func (s *Store) Flush(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.saveMu.Lock()
	pending, dirty := s.pending, s.dirty
	s.pending, s.dirty = nil, false
	s.saveMu.Unlock()

	if !dirty {
		return nil
	}
	if err := saveEntries(ctx, s.db, pending); err != nil {
		return err
	}
	s.logger.Debug("items saved", "count", len(pending))
	return nil
}

// Close stops the debounce timer, writes any pending save and closes the
// database. A flush error is logged; the close error is returned.
func (s *Store) Close() error {
	s.saveMu.Lock()
	if s.saveTimer != nil {
		s.saveTimer.Stop()
	}
	s.saveMu.Unlock()

	if err := s.Flush(context.Background()); err != nil {
		s.logger.Error(errmsg.Format(errmsg.OpItemsSave, err))
	}
	return s.db.Close()
}
