package logging

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestForCaseTagsEntries(t *testing.T) {
	prev := Logger
	defer Replace(prev)

	core, logs := observer.New(zapcore.DebugLevel)
	Replace(zap.New(core))

	ForCase("case-42").Info("assessed")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "case-42", entries[0].ContextMap()["case_id"])
}

func TestInitializeToFile(t *testing.T) {
	prev := Logger
	defer Replace(prev)

	path := filepath.Join(t.TempDir(), "casecost.log")
	err := Initialize(Config{Level: "debug", Format: "json", Output: path})
	require.NoError(t, err)
	assert.True(t, Logger.Core().Enabled(zapcore.DebugLevel))
}

func TestInitializeBadLevelFallsBackToInfo(t *testing.T) {
	prev := Logger
	defer Replace(prev)

	require.NoError(t, Initialize(Config{Level: "loud", Output: "stderr"}))
	assert.False(t, Logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, Logger.Core().Enabled(zapcore.InfoLevel))
}

func TestLevelHelpers(t *testing.T) {
	prev := Logger
	defer Replace(prev)

	core, logs := observer.New(zapcore.DebugLevel)
	Replace(zap.New(core))

	Debug("loaded")
	Warn("not certifiable")
	Error("failed", zap.String("cmd", "estimate"))
	With(zap.String("file", "a.json")).Info("validated")

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "estimate", entries[2].ContextMap()["cmd"])
	assert.Equal(t, "a.json", entries[3].ContextMap()["file"])
}
