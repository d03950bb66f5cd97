package seed

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestLoadCatalog(t *testing.T) {
	src := New(testLogger())

	articles, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 6)

	ids := make([]string, len(articles))
	categories := make([]string, len(articles))
	for i, a := range articles {
		ids[i] = a.ID
		categories[i] = a.Category

		assert.NotEmpty(t, a.Title, "article %s", a.ID)
		assert.NotEmpty(t, a.Excerpt, "article %s", a.ID)
		assert.NotEmpty(t, a.Content, "article %s", a.ID)
		assert.NotEmpty(t, a.Author, "article %s", a.ID)
		assert.NotEmpty(t, a.ReadTime, "article %s", a.ID)
		assert.False(t, a.PublishedAt.IsZero(), "article %s", a.ID)
	}

	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, ids)
	assert.Equal(t, []string{"breaking", "business", "sport", "politics", "lifestyle", "technology"}, categories)
}

func TestCatalogSeedsBookmarks(t *testing.T) {
	src := New(testLogger())

	articles, err := src.Load(context.Background())
	require.NoError(t, err)

	bookmarked := make(map[string]bool, len(articles))
	for _, a := range articles {
		bookmarked[a.ID] = a.IsBookmarked
	}

	assert.True(t, bookmarked["2"])
	assert.True(t, bookmarked["5"])
	assert.False(t, bookmarked["1"])
	assert.False(t, bookmarked["3"])
}

func TestSourceIdentity(t *testing.T) {
	src := New(testLogger())

	assert.Equal(t, SourceID, src.ID())
	assert.Equal(t, SourceName, src.Name())
}
