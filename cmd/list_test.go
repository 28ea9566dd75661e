package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tighten.dev/pkg/tighten/internal/domain"
	m "tighten.dev/pkg/tighten/internal/model"
)

func TestListCmd(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	t.Cleanup(func() { showDiffFlag = false })

	mockWorkflow.EXPECT().List(mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		return args.ShowDiff && args.Threads == 8 && args.Root == m.Path("crates/core")
	})).Return(nil).Once()

	require.NoError(t, executeWith(t, newListCmd(), "list", "--diff", "-p", "8", "-C", "crates/core"))
}

func TestListCmd_NotProject(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	mockWorkflow.EXPECT().List(mock.Anything, mock.Anything).Return(m.ErrNotProject).Once()

	err := executeWith(t, newListCmd(), "list")
	require.True(t, errors.Is(err, m.ErrNotProject))
}
