package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("MAZE", "", &buf)
	require.NoError(t, err)

	l.Info("generated")
	l.Warning("slow")
	l.Error("stuck")

	out := buf.String()
	assert.Contains(t, out, "[MAZE] ")
	assert.Contains(t, out, "[INFO]\033[0m generated")
	assert.Contains(t, out, "[WARNING]\033[0m slow")
	assert.Contains(t, out, "[ERROR]\033[0m stuck")
}

func TestLoggerRequiresPrefix(t *testing.T) {
	_, err := New("", "", &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrEmptyPrefix)
}
