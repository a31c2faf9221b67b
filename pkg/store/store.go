// Package store persists every user's reminder list to a single JSON file.
//
// The file holds an object keyed by the decimal user ID, each value being the
// user's reminders in insertion order. Every mutating call rewrites the file
// before returning, so a crash can only ever lose the in-flight request.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/ndanilko/pomni/pkg/common"
	"github.com/ndanilko/pomni/pkg/models"
)

// Store owns the durable user to reminder-list mapping.
// All access goes through a single mutex around the load-mutate-save sequence.
type Store struct {
	mu        sync.Mutex
	path      string
	reminders map[uint64][]models.Reminder
	counter   int
}

func New(path string) *Store {
	return &Store{
		path:      path,
		reminders: make(map[uint64][]models.Reminder),
	}
}

// Load reads the reminder file. A missing file yields an empty store; an
// unreadable or corrupt file is logged and also yields an empty store, so a
// bad file never keeps the bot from starting.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		common.Logger.Warn("reminder file unreadable, starting empty:", err)
		return nil
	}

	var raw map[string][]models.Reminder
	if err := json.Unmarshal(data, &raw); err != nil {
		common.Logger.Warn("reminder file corrupt, starting empty:", err)
		return nil
	}

	for key, reminders := range raw {
		userID, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			common.Logger.Warn("skipping reminder entry with bad user key:", key)
			continue
		}
		s.reminders[userID] = reminders
		for _, r := range reminders {
			if r.ID > s.counter {
				s.counter = r.ID
			}
		}
	}

	return nil
}

// Append allocates the next reminder ID, appends the record to the user's
// list and persists. IDs are monotonic across all users and never reused.
func (s *Store) Append(userID uint64, text string, at time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counter++
	s.reminders[userID] = append(s.reminders[userID], models.Reminder{
		ID:   s.counter,
		Text: text,
		Time: at,
	})

	if err := s.persist(); err != nil {
		return 0, err
	}
	return s.counter, nil
}

// SetJobID updates the scheduler handle on a record and persists.
// A record that has disappeared in the meantime is a silent no-op.
func (s *Store) SetJobID(userID uint64, id int, jobID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.reminders[userID] {
		if r.ID == id {
			s.reminders[userID][i].JobID = jobID
			return s.persist()
		}
	}
	return nil
}

// Remove deletes the matching reminder and persists.
// Removing an absent ID is a no-op, not an error.
func (s *Store) Remove(userID uint64, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reminders := s.reminders[userID]
	for i, r := range reminders {
		if r.ID == id {
			s.reminders[userID] = append(reminders[:i:i], reminders[i+1:]...)
			return s.persist()
		}
	}
	return nil
}

// List returns a copy of the user's reminders in insertion order.
func (s *Store) List(userID uint64) []models.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.Reminder(nil), s.reminders[userID]...)
}

// All returns a snapshot of the whole mapping, for recovery.
func (s *Store) All() map[uint64][]models.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make(map[uint64][]models.Reminder, len(s.reminders))
	for userID, reminders := range s.reminders {
		snapshot[userID] = append([]models.Reminder(nil), reminders...)
	}
	return snapshot
}

// persist writes the full mapping to disk. Callers hold s.mu.
// A failed write is retried once before the error surfaces.
func (s *Store) persist() error {
	raw := make(map[string][]models.Reminder, len(s.reminders))
	for userID, reminders := range s.reminders {
		raw[strconv.FormatUint(userID, 10)] = reminders
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		common.Logger.Warn("reminder file write failed, retrying:", err)
		if err = os.WriteFile(s.path, data, 0644); err != nil {
			return err
		}
	}
	return nil
}
