package adapter

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tighten.dev/pkg/tighten/internal/adapter/mocks"
	m "tighten.dev/pkg/tighten/internal/model"
)

func gitArgs(args ...string) interface{} {
	return mock.MatchedBy(func(c m.Command) bool {
		return c.Name == "git" && c.Dir == "/work" && assert.ObjectsAreEqual(args, c.Args)
	})
}

func TestLocalGitAdapter(t *testing.T) {
	ctx := context.Background()

	t.Run("Reset", func(t *testing.T) {
		process := mocks.NewMockProcessAdapter(t)
		process.EXPECT().Run(mock.Anything, gitArgs("reset", "--hard", "--quiet", "HEAD")).Return(m.Success, nil).Once()

		result, err := NewLocalGitAdapter(process, "", nil).Reset(ctx, "/work")
		require.NoError(t, err)
		assert.Equal(t, m.Success, result)
	})

	t.Run("Discard", func(t *testing.T) {
		process := mocks.NewMockProcessAdapter(t)
		process.EXPECT().Run(mock.Anything, gitArgs("checkout", "--quiet", "--", ".")).Return(m.Success, nil).Once()

		_, err := NewLocalGitAdapter(process, "", nil).Discard(ctx, "/work")
		require.NoError(t, err)
	})

	t.Run("Commit with body", func(t *testing.T) {
		process := mocks.NewMockProcessAdapter(t)
		process.EXPECT().Run(mock.Anything, gitArgs("commit", "--all", "--quiet", "-m", "subject", "-m", "body")).Return(m.Success, nil).Once()

		_, err := NewLocalGitAdapter(process, "", nil).Commit(ctx, "/work", "subject", "body")
		require.NoError(t, err)
	})

	t.Run("Commit without body", func(t *testing.T) {
		process := mocks.NewMockProcessAdapter(t)
		process.EXPECT().Run(mock.Anything, gitArgs("commit", "--all", "--quiet", "-m", "subject")).Return(m.Success, nil).Once()

		_, err := NewLocalGitAdapter(process, "", nil).Commit(ctx, "/work", "subject", "")
		require.NoError(t, err)
	})

	t.Run("IsClean", func(t *testing.T) {
		process := mocks.NewMockProcessAdapter(t)
		process.EXPECT().Run(mock.Anything, gitArgs("diff", "--quiet", "HEAD")).Return(m.Failure, nil).Once()

		clean, err := NewLocalGitAdapter(process, "", nil).IsClean(ctx, "/work")
		require.NoError(t, err)
		assert.False(t, clean)
	})

	t.Run("IsClean launch error", func(t *testing.T) {
		process := mocks.NewMockProcessAdapter(t)
		launchErr := &LaunchError{Name: "git", Err: errors.New("not found")}
		process.EXPECT().Run(mock.Anything, mock.Anything).Return(m.Failure, launchErr).Once()

		_, err := NewLocalGitAdapter(process, "", nil).IsClean(ctx, "/work")
		assert.ErrorAs(t, err, &launchErr)
	})
}
