package main

import (
	"bytes"
	"testing"

	"github.com/beka-birhanu/vinom-maze/cli"
	"github.com/beka-birhanu/vinom-maze/infrastruture/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"version"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, cli.Version+"\n", stdout.String())
	assert.NotNil(t, appLogger)
}

func TestRunStopsWithoutLogger(t *testing.T) {
	prefix := appLoggerPrefix
	appLoggerPrefix = ""
	t.Cleanup(func() { appLoggerPrefix = prefix })

	var stdout, stderr bytes.Buffer
	code := run([]string{"version"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), logger.ErrEmptyPrefix.Error())
	assert.Empty(t, stdout.String())
}
