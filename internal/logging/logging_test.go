// SPDX-License-Identifier: MIT

package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/stepwise/internal/config"
)

func TestNew_Levels(t *testing.T) {
	for _, lvl := range config.ValidLevels {
		for _, format := range []string{"json", "console"} {
			logger, err := New(config.LoggingConfig{Level: lvl, Format: format})
			require.NoError(t, err, "%s/%s", lvl, format)

			want, _ := zapcore.ParseLevel(lvl)
			assert.True(t, logger.Core().Enabled(want))
			if want > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(want-1))
			}
		}
	}
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(config.LoggingConfig{Level: "chatty", Format: "json"})
	assert.Error(t, err)
}

func TestNewNop(t *testing.T) {
	logger := NewNop()
	assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
}
