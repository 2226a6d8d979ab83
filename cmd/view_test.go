package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jacquemi-bbp/NeuroTS/internal/domain"
)

func TestViewCmd_DefaultFormat(t *testing.T) {
	cmd, mockWorkflow, out := newTestRoot(t)

	mockWorkflow.EXPECT().View(mock.Anything, mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.ID == "0f9e" && args.Format == domain.FormatSummary && args.Output == out
	})).Return(nil)

	cmd.SetArgs([]string{"view", "0f9e"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_Format(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRoot(t)

	mockWorkflow.EXPECT().View(mock.Anything, mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.ID == "abc" && args.Format == domain.FormatSWC
	})).Return(nil)

	cmd.SetArgs([]string{"view", "abc", "-f", "swc"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_RequiresID(t *testing.T) {
	cmd, _, _ := newTestRoot(t)

	cmd.SetArgs([]string{"view"})
	assert.Error(t, cmd.Execute())
}

func TestViewCmd_PropagatesErrors(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRoot(t)
	testErr := errors.New("morphology record not found")

	mockWorkflow.EXPECT().View(mock.Anything, mock.Anything).Return(testErr)

	cmd.SetArgs([]string{"view", "nope"})
	assert.ErrorIs(t, cmd.Execute(), testErr)
}
