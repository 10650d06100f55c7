package logger_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/nerdeck/internal/logger"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)
}

func newTestLogger(buf *bytes.Buffer, level logger.Level) *logger.Logger {
	return logger.New(
		logger.WithOutput(buf),
		logger.WithLevel(level),
		logger.WithColors(false),
		logger.WithClock(fixedClock),
	)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]logger.Level{
		"debug":   logger.DEBUG,
		"INFO":    logger.INFO,
		"warning": logger.WARN,
		" error ": logger.ERROR,
		"bogus":   logger.INFO,
		"":        logger.INFO,
	}
	for in, want := range tests {
		assert.Equal(t, want, logger.ParseLevel(in), "input %q", in)
	}
}

func TestLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf, logger.WARN)

	log.Debug("hidden")
	log.Info("hidden")
	log.Warn("shown %d", 1)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown 1")
	assert.True(t, strings.HasPrefix(out, "2024-03-10 09:30:00.000 WARN "))
}

func TestLogger_FieldsAreSortedAndQuoted(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf, logger.DEBUG).
		WithPrefix("study").
		WithFields(map[string]any{"zeta": 1, "alpha": "two words"})

	log.Info("answer recorded")

	line := buf.String()
	assert.Contains(t, line, "[study] ")
	assert.Contains(t, line, `answer recorded alpha="two words" zeta=1`)
}

func TestLogger_DerivedLoggersDoNotShareFields(t *testing.T) {
	var buf bytes.Buffer
	base := newTestLogger(&buf, logger.DEBUG)
	child := base.WithField("card_id", 7)

	base.Info("base")
	child.Info("child")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.NotContains(t, lines[0], "card_id")
	assert.Contains(t, lines[1], "card_id=7")
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf, logger.INFO)

	ctx := logger.NewContext(context.Background(), log)
	assert.Same(t, log, logger.FromContext(ctx))
	assert.Same(t, logger.Default(), logger.FromContext(context.Background()))
}
