package controller

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUI_TTYMode(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	ui := NewUI(cmd, true)

	assert.IsType(t, &TUI{}, ui)
}

func TestNewUI_NonTTYMode(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	ui := NewUI(cmd, false)

	assert.IsType(t, &SimpleUI{}, ui)
}

func TestIsTTY_NonFileWriter(t *testing.T) {
	assert.False(t, IsTTY(&bytes.Buffer{}))
}

func TestIsTTY_RegularFile(t *testing.T) {
	file, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer file.Close()

	assert.False(t, IsTTY(file))
}

func TestIsTTY_ClosedFile(t *testing.T) {
	file, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	require.NoError(t, file.Close())

	assert.False(t, IsTTY(file))
}
