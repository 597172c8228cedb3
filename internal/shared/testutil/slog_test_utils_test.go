package testutil

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferedSlogHandler(t *testing.T) {
	logger, h := NewTestLogger(t)

	logger.With(slog.String("step", "gsd")).Warn("unmatched", slog.Int("rows", 3))
	logger.Info("done")

	r := AssertLogContains(t, h, slog.LevelWarn, "unmatched")
	assert.Equal(t, "gsd", r.Attrs["step"])
	assert.Equal(t, int64(3), r.Attrs["rows"])

	assert.Len(t, h.GetRecords(), 2)
	assert.Len(t, h.GetRecordsByLevel(slog.LevelInfo), 1)
	_, ok := h.Find("missing")
	assert.False(t, ok)
	AssertNoErrors(t, h)
}
