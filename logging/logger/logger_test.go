package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ncobase/taskbridge/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureRequestID(t *testing.T) {
	ctx, id := EnsureRequestID(context.Background())
	require.NotEmpty(t, id)
	assert.Equal(t, id, RequestID(ctx))

	ctx2, id2 := EnsureRequestID(ctx)
	assert.Equal(t, id, id2)
	assert.Equal(t, ctx, ctx2)
}

func TestRequestIDNilContext(t *testing.T) {
	//nolint:staticcheck
	assert.Equal(t, "", RequestID(nil))
}

func TestContextFieldsInOutput(t *testing.T) {
	l := &Logger{Logger: logrus.New()}
	_, err := l.Init(&config.Logger{Level: int(logrus.DebugLevel), Format: "json"})
	require.NoError(t, err)

	var buf bytes.Buffer
	l.SetWriter(&buf)
	l.SetVersion("v1.2.3")

	ctx := WithRequestID(context.Background(), "req-1")
	l.Infof(ctx, "normalized %d filters", 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-1", entry[RequestIDKey])
	assert.Equal(t, "v1.2.3", entry[VersionKey])
	assert.Equal(t, "normalized 2 filters", entry["msg"])
}

func TestInitFileWithoutPath(t *testing.T) {
	l := &Logger{Logger: logrus.New()}
	_, err := l.Init(&config.Logger{Level: 4, Output: "file"})
	assert.Error(t, err)
}

func TestInitReplacesLogFile(t *testing.T) {
	dir := t.TempDir()
	l := &Logger{Logger: logrus.New()}

	_, err := l.Init(&config.Logger{Level: 4, Output: "file", OutputFile: filepath.Join(dir, "a.log")})
	require.NoError(t, err)
	first := l.logFile
	require.NotNil(t, first)

	cleanup, err := l.Init(&config.Logger{Level: 4, Output: "file", OutputFile: filepath.Join(dir, "b.log")})
	require.NoError(t, err)
	assert.NotSame(t, first, l.logFile)
	assert.ErrorIs(t, first.Close(), os.ErrClosed)

	cleanup()
	assert.Nil(t, l.logFile)

	_, err = l.Init(&config.Logger{Level: 4, Output: "stderr"})
	require.NoError(t, err)
	assert.Nil(t, l.logFile)
}
