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

func TestLogger_Levels(t *testing.T) {
	logger := New()
	assert.NotNil(t, logger)

	logger.Info("Test message: %s", "info")
	logger.Warn("Test warning: %s", "warn")
	logger.Error("Test error: %s", "error")
}

func TestLogger_MultipleCalls(t *testing.T) {
	logger := New()
	assert.NotNil(t, logger)

	logger.Info("Info 1")
	logger.Error("Error 1")
	logger.Warn("Warn 1")

	logger.Info("Info 2")
	logger.Error("Error 2")
	logger.Warn("Warn 2")
}
