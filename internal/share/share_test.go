package share

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"news_reader/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestShareTextFormat(t *testing.T) {
	a := domain.Article{
		Title:   "Underdogs Stun Champions in Rugby Cup Thriller",
		Excerpt: "A last-minute drop goal sealed a historic upset.",
	}

	assert.Equal(t,
		"Underdogs Stun Champions in Rugby Cup Thriller\n\nA last-minute drop goal sealed a historic upset.",
		shareText(a),
	)
}

func TestUnavailableVariant(t *testing.T) {
	u := &unavailable{}

	assert.False(t, u.Available())
	assert.ErrorIs(t, u.Share(context.Background(), domain.Article{}), ErrUnavailable)
}

func TestClipboardSharerRespectsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := &clipboardSharer{logger: testLogger()}

	assert.ErrorIs(t, c.Share(ctx, domain.Article{Title: "x"}), context.Canceled)
}
