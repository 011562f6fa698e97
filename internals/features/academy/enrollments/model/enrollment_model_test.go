package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveProgressState(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	t.Run("progress penuh jadi completed dengan tanggal", func(t *testing.T) {
		status, date := DeriveProgressState(100, StatusActive, now)
		assert.Equal(t, StatusCompleted, status)
		if assert.NotNil(t, date) {
			assert.Equal(t, now, *date)
		}
	})

	t.Run("lebih dari 100 tetap completed", func(t *testing.T) {
		status, date := DeriveProgressState(150, StatusActive, now)
		assert.Equal(t, StatusCompleted, status)
		assert.NotNil(t, date)
	})

	t.Run("progress parsial tetap active", func(t *testing.T) {
		status, date := DeriveProgressState(55, StatusActive, now)
		assert.Equal(t, StatusActive, status)
		assert.Nil(t, date)
	})

	t.Run("dropped tidak bangun sendiri dari update progress", func(t *testing.T) {
		status, date := DeriveProgressState(55, StatusDropped, now)
		assert.Equal(t, StatusDropped, status)
		assert.Nil(t, date)
	})

	t.Run("dropped yang menuntaskan materi tetap completed", func(t *testing.T) {
		status, _ := DeriveProgressState(100, StatusDropped, now)
		assert.Equal(t, StatusCompleted, status)
	})
}
