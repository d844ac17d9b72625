package observability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/marcos-nsantos/geocoord-backend/internal/infrastructure/observability"
)

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"json", "console", ""} {
		t.Run(format, func(t *testing.T) {
			logger, err := observability.NewLogger("warn", format, zap.String("service", "geocoord-api"))

			require.NoError(t, err)
			assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
			assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
		})
	}
}

func TestNewLogger_Invalid(t *testing.T) {
	_, err := observability.NewLogger("loud", "json")
	assert.Error(t, err)

	_, err = observability.NewLogger("info", "xml")
	assert.Error(t, err)
}
