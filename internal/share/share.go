// Package share implements the platform share capability. The concrete
// variant is resolved once at startup: clipboard-backed where the host
// supports it, otherwise an explicit unavailable variant, so callers
// never probe the platform themselves.
package share

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/atotto/clipboard"

	"news_reader/internal/domain"
	"news_reader/internal/service"
)

// ErrUnavailable is returned by the unavailable variant.
var ErrUnavailable = errors.New("share: no share target on this platform")

// New resolves the share capability for the current platform.
func New(logger *slog.Logger) service.Sharer {
	if clipboard.Unsupported {
		logger.Debug("clipboard unsupported, share disabled")
		return &unavailable{}
	}
	return &clipboardSharer{logger: logger}
}

type clipboardSharer struct {
	logger *slog.Logger
}

func (c *clipboardSharer) Available() bool { return true }

// Share copies a share text for the article to the system clipboard.
func (c *clipboardSharer) Share(ctx context.Context, article domain.Article) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := clipboard.WriteAll(shareText(article)); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}

	c.logger.Debug("shared article", "id", article.ID)
	return nil
}

type unavailable struct{}

func (u *unavailable) Available() bool { return false }

func (u *unavailable) Share(context.Context, domain.Article) error {
	return ErrUnavailable
}

func shareText(article domain.Article) string {
	return fmt.Sprintf("%s\n\n%s", article.Title, article.Excerpt)
}
