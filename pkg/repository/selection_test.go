package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionRepository_SaveSelectedTopics(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	t.Run("save replaces previous selection", func(t *testing.T) {
		err := repos.Selection.SaveSelectedTopics(context.Background(), []string{"ai"})
		require.NoError(t, err)

		err = repos.Selection.SaveSelectedTopics(context.Background(), []string{"space"})
		require.NoError(t, err)

		selected, err := repos.Selection.GetSelectedTopics(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"space"}, selected)
	})

	t.Run("save same id again keeps singleton", func(t *testing.T) {
		err := repos.Selection.SaveSelectedTopics(context.Background(), []string{"space"})
		require.NoError(t, err)

		selected, err := repos.Selection.GetSelectedTopics(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"space"}, selected)
	})

	t.Run("save empty clears selection", func(t *testing.T) {
		err := repos.Selection.SaveSelectedTopics(context.Background(), nil)
		require.NoError(t, err)

		selected, err := repos.Selection.GetSelectedTopics(context.Background())
		require.NoError(t, err)
		assert.Empty(t, selected)
	})
}
