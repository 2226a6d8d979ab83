package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jacquemi-bbp/NeuroTS/internal/adapter"
	"github.com/jacquemi-bbp/NeuroTS/internal/domain"
	m "github.com/jacquemi-bbp/NeuroTS/internal/model"
)

func TestGrowCmd_Flags(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRoot(t)

	mockWorkflow.EXPECT().Grow(mock.Anything, domain.GrowArgs{
		Params:        m.Path("params.json"),
		Distributions: m.Path("distr.json"),
		Name:          "pyr",
		Seed:          7,
		Diametrize:    true,
		Store:         adapter.StoreConfig{Kind: "memory", Path: "morphologies"},
	}).Return(nil)

	cmd.SetArgs([]string{
		"grow", "-p", "params.json", "-d", "distr.json",
		"--name", "pyr", "--seed", "7",
		"--diametrize", "--store", "memory",
	})
	require.NoError(t, cmd.Execute())
}

func TestGrowCmd_Defaults(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRoot(t)

	mockWorkflow.EXPECT().Grow(mock.Anything, mock.MatchedBy(func(args domain.GrowArgs) bool {
		return args.Seed == 0 && args.Name == "" && !args.Diametrize
	})).Return(nil)

	cmd.SetArgs([]string{"grow", "--params", "p.yaml", "--distributions", "d.yaml"})
	require.NoError(t, cmd.Execute())
}

func TestGrowCmd_ConfigDefaults(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRoot(t)

	path := writeConfig(t, "growth:\n  seed: 11\n")

	mockWorkflow.EXPECT().Grow(mock.Anything, mock.MatchedBy(func(args domain.GrowArgs) bool {
		return args.Seed == 11
	})).Return(nil)

	cmd.SetArgs([]string{"grow", "-p", "p.yaml", "-d", "d.yaml", "--config", path})
	require.NoError(t, cmd.Execute())
}

func TestGrowCmd_SeedFlagOverridesConfig(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRoot(t)
	t.Setenv("NEUROTS_SEED", "99")

	mockWorkflow.EXPECT().Grow(mock.Anything, mock.MatchedBy(func(args domain.GrowArgs) bool {
		return args.Seed == 0
	})).Return(nil)

	cmd.SetArgs([]string{"grow", "-p", "p.yaml", "-d", "d.yaml", "--seed", "0"})
	require.NoError(t, cmd.Execute())
}

func TestGrowCmd_RequiresInputs(t *testing.T) {
	cmd, _, _ := newTestRoot(t)

	cmd.SetArgs([]string{"grow", "--params", "p.yaml"})
	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "distributions")
}

func TestGrowCmd_RejectsArguments(t *testing.T) {
	cmd, _, _ := newTestRoot(t)

	cmd.SetArgs([]string{"grow", "-p", "p.yaml", "-d", "d.yaml", "extra"})
	assert.Error(t, cmd.Execute())
}

func TestGrowCmd_SeedFromEnvironment(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRoot(t)
	t.Setenv("NEUROTS_SEED", "13")

	mockWorkflow.EXPECT().Grow(mock.Anything, mock.MatchedBy(func(args domain.GrowArgs) bool {
		return args.Seed == 13
	})).Return(nil)

	cmd.SetArgs([]string{"grow", "-p", "p.yaml", "-d", "d.yaml"})
	require.NoError(t, cmd.Execute())
}
