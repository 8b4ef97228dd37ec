// Package history keeps per-user undo/redo stacks of deleted study log
// entries. The stacks live in process memory only; a restart clears them.
package history

import (
	"sync"

	"studytracker/backend/models"
)

const DefaultLimit = 50

// Store holds one undo and one redo stack per user id. All methods are safe
// for concurrent use.
type Store struct {
	mu    sync.Mutex
	limit int
	users map[uint]*stacks
}

type stacks struct {
	undo []models.StudyLog
	redo []models.StudyLog
}

func NewStore(limit int) *Store {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Store{
		limit: limit,
		users: make(map[uint]*stacks),
	}
}

func (s *Store) forUser(userID uint) *stacks {
	st, ok := s.users[userID]
	if !ok {
		st = &stacks{}
		s.users[userID] = st
	}
	return st
}

// RecordDelete snapshots a just-deleted entry. Any redo history is
// invalidated, and the oldest snapshot is dropped once the limit is hit.
func (s *Store) RecordDelete(userID uint, entry models.StudyLog) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.forUser(userID)
	st.undo = append(st.undo, entry)
	st.redo = st.redo[:0]
	if len(st.undo) > s.limit {
		st.undo = st.undo[len(st.undo)-s.limit:]
	}
}

// Undo pops the most recently deleted entry and moves it onto the redo
// stack. The second return is false when there is nothing to undo.
func (s *Store) Undo(userID uint) (models.StudyLog, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.forUser(userID)
	if len(st.undo) == 0 {
		return models.StudyLog{}, false
	}
	entry := st.undo[len(st.undo)-1]
	st.undo = st.undo[:len(st.undo)-1]
	st.redo = append(st.redo, entry)
	return entry, true
}

// Redo pops the most recently undone entry and moves it back onto the undo
// stack. The second return is false when there is nothing to redo.
func (s *Store) Redo(userID uint) (models.StudyLog, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.forUser(userID)
	if len(st.redo) == 0 {
		return models.StudyLog{}, false
	}
	entry := st.redo[len(st.redo)-1]
	st.redo = st.redo[:len(st.redo)-1]
	st.undo = append(st.undo, entry)
	return entry, true
}

// Depths reports the current stack sizes for a user.
func (s *Store) Depths(userID uint) (undo, redo int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.users[userID]
	if !ok {
		return 0, 0
	}
	return len(st.undo), len(st.redo)
}
