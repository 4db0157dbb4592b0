package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/MBEJunior/uniql"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRoot_Format(t *testing.T) {
	out, err := execute(t, "fmt", "--compact", "a { b }")
	require.NoError(t, err)
	assert.Equal(t, "a{b}\n", out)
}

func TestRoot_ParseModel(t *testing.T) {
	out, err := execute(t, "parse", "--format", "model", "product{name, category{name}|price>10|1-20|-name}")
	require.NoError(t, err)
	assert.Equal(t, "product{name,category{name}|price>10|1-20|-name}\n", out)
}

func TestRoot_MaxDepthFlag(t *testing.T) {
	_, err := execute(t, "--max-depth", "1", "parse", "a{b{c{d}}}")
	require.Error(t, err)
	assert.True(t, uniql.IsCode(err, uniql.ErrMaxDepth), "got %v", err)

	_, err = execute(t, "--max-depth=-1", "parse", "a{b{c{d{e}}}}")
	assert.NoError(t, err)
}

func TestRoot_StrictPageFlag(t *testing.T) {
	_, err := execute(t, "parse", "a{b||0-10}")
	require.NoError(t, err)

	_, err = execute(t, "--strict-page", "parse", "a{b||0-10}")
	assert.True(t, uniql.IsCode(err, uniql.ErrMalformedPage), "got %v", err)
}

func TestRoot_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uniql.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_depth: 1\nformat: model\n"), 0o644))

	out, err := execute(t, "--config", path, "parse", "a { b }")
	require.NoError(t, err)
	assert.Equal(t, "a{b}\n", out)

	_, err = execute(t, "--config", path, "parse", "a{b{c{d}}}")
	assert.True(t, uniql.IsCode(err, uniql.ErrMaxDepth), "got %v", err)

	_, err = execute(t, "--config", path, "--max-depth", "5", "parse", "a{b{c{d}}}")
	assert.NoError(t, err, "flag overrides the config file")
}

func TestRoot_MissingConfigFile(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "fmt", "a")
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger(false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.DebugLevel), "debug is off by default")

	logger, err = newLogger(true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))
}
