package history

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"studytracker/backend/models"
)

func entry(id uint) models.StudyLog {
	return models.StudyLog{ID: id, UserID: 1, Date: "2024-01-01", Subject: "math", Hours: 1, Difficulty: 3}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	s := NewStore(10)

	s.RecordDelete(1, entry(2))

	got, ok := s.Undo(1)
	assert.True(t, ok)
	assert.Equal(t, uint(2), got.ID)

	undo, redo := s.Depths(1)
	assert.Equal(t, 0, undo)
	assert.Equal(t, 1, redo)

	got, ok = s.Redo(1)
	assert.True(t, ok)
	assert.Equal(t, uint(2), got.ID)

	undo, redo = s.Depths(1)
	assert.Equal(t, 1, undo)
	assert.Equal(t, 0, redo)
}

func TestEmptyStacksAreNoops(t *testing.T) {
	s := NewStore(10)

	_, ok := s.Undo(1)
	assert.False(t, ok)
	_, ok = s.Redo(1)
	assert.False(t, ok)
}

func TestNewDeleteClearsRedo(t *testing.T) {
	s := NewStore(10)

	s.RecordDelete(1, entry(1))
	_, ok := s.Undo(1)
	assert.True(t, ok)

	s.RecordDelete(1, entry(2))

	_, redo := s.Depths(1)
	assert.Equal(t, 0, redo)
	_, ok = s.Redo(1)
	assert.False(t, ok)
}

func TestStacksArePerUser(t *testing.T) {
	s := NewStore(10)

	s.RecordDelete(1, entry(1))

	_, ok := s.Undo(2)
	assert.False(t, ok)

	got, ok := s.Undo(1)
	assert.True(t, ok)
	assert.Equal(t, uint(1), got.ID)
}

func TestLimitDropsOldest(t *testing.T) {
	s := NewStore(2)

	s.RecordDelete(1, entry(1))
	s.RecordDelete(1, entry(2))
	s.RecordDelete(1, entry(3))

	undo, _ := s.Depths(1)
	assert.Equal(t, 2, undo)

	got, _ := s.Undo(1)
	assert.Equal(t, uint(3), got.ID)
	got, _ = s.Undo(1)
	assert.Equal(t, uint(2), got.ID)
	_, ok := s.Undo(1)
	assert.False(t, ok)
}
