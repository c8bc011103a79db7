package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"unitcalc/internal/errors"
	"unitcalc/internal/logging"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "unitcalc.json")

	cfg := Default()
	cfg.Format.Default = "hex"
	cfg.Units.UserScales["ft"] = 0.3
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "hex", loaded.Format.Default)
	assert.Equal(t, 0.3, loaded.Units.UserScales["ft"])
	assert.Equal(t, 4, loaded.Eval.MaxWorkers)
}

func TestLoadRejectsZeroScale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"units":{"user_scales":{"km":0}}}`), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeConfig))
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"format":`), 0644))

	_, err := Load(path)
	assert.True(t, errors.IsType(err, errors.TypeConfig))
}

func TestValidateClampsWorkersWithWarning(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	restore := logging.Replace(zap.New(core))
	defer restore()

	cfg := Default()
	cfg.Eval.MaxWorkers = 0
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1, cfg.Eval.MaxWorkers)

	entries := logs.FilterMessageSnippet("max_workers").AllUntimed()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(0), entries[0].ContextMap()["max_workers"])
}

func TestLoadErrorNamesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
