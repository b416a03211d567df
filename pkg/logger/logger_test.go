package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	logger := New()
	assert.NotNil(t, logger)
	assert.NotNil(t, logger.info)
	assert.NotNil(t, logger.error)
	assert.NotNil(t, logger.warn)
}

func TestLevels(t *testing.T) {
	logger := New()

	// None of these should panic
	logger.Info("song %s uploaded by %s", "song-1", "creator-1")
	logger.Warn("genre %q not found, song stored untagged", "Polka")
	logger.Error("failed to delete object %s: %v", "audio/123_track.mp3", "timeout")
}

func TestLevels_NoArgs(t *testing.T) {
	logger := New()

	logger.Info("server starting")
	logger.Warn("redis unavailable")
	logger.Error("database connection lost")
}
