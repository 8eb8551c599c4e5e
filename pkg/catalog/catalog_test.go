package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	require.NotEmpty(t, c.All())

	t.Run("all ids unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, topic := range c.All() {
			assert.False(t, seen[topic.ID], "duplicate id %s", topic.ID)
			seen[topic.ID] = true
		}
	})

	t.Run("lookup known topic", func(t *testing.T) {
		topic, ok := c.Get("ai")
		require.True(t, ok)
		assert.Equal(t, "Artificial Intelligence", topic.Name)
		assert.Equal(t, "Technology", topic.Category)
		assert.True(t, topic.TopPick)
	})

	t.Run("lookup unknown topic", func(t *testing.T) {
		_, ok := c.Get("no-such-topic")
		assert.False(t, ok)
	})
}

func TestCatalog_ByCategory(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	groups := c.ByCategory()
	require.NotEmpty(t, groups)

	// categories keep first-appearance order and don't repeat
	seen := make(map[string]bool)
	total := 0
	for _, g := range groups {
		assert.False(t, seen[g.Category], "category %s repeated", g.Category)
		seen[g.Category] = true
		assert.NotEmpty(t, g.Topics)
		for _, topic := range g.Topics {
			assert.Equal(t, g.Category, topic.Category)
		}
		total += len(g.Topics)
	}
	assert.Equal(t, len(c.All()), total, "grouping must cover the whole catalog")
}

func TestCatalog_TopPicks(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	picks := c.TopPicks()
	require.NotEmpty(t, picks)
	assert.Less(t, len(picks), len(c.All()), "top picks is a curated subset")
	for _, topic := range picks {
		assert.True(t, topic.TopPick)
	}
}
