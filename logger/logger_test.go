package logger

import (
	"testing"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
)

func TestLogger_NewLogger(t *testing.T) {
	t.Run("debug", func(t *testing.T) {
		log := NewLogger("DEBUG", "scenredDebug")
		assert.NotNil(t, log)
		assert.True(t, log.IsEnabledFor(logging.DEBUG))
	})

	t.Run("case insensitive", func(t *testing.T) {
		log := NewLogger("warning", "scenredWarning")
		assert.True(t, log.IsEnabledFor(logging.WARNING))
		assert.False(t, log.IsEnabledFor(logging.INFO))
	})

	t.Run("invalid log level", func(t *testing.T) {
		log := NewLogger("INVALID", "scenredInvalid")
		assert.NotNil(t, log)
		assert.True(t, log.IsEnabledFor(logging.INFO))
		assert.False(t, log.IsEnabledFor(logging.DEBUG))
	})
}

func TestLogger_LogLevelFlag(t *testing.T) {
	assert.Equal(t, "log-level", LogLevelFlag.Name)
	assert.Equal(t, "INFO", LogLevelFlag.Value)
	assert.Contains(t, LogLevelFlag.EnvVars, "SCENRED_LOG_LEVEL")
}
