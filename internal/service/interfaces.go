package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"news_reader/internal/domain"
)

type ArticleStore interface {
	Articles() []domain.Article
	Get(id string) (domain.Article, bool)
	ToggleBookmark(id string) bool
}

type Source interface {
	ID() string
	Name() string
	Load(ctx context.Context) ([]domain.Article, error)
}

// Sharer is the platform share capability, resolved once at startup.
// Share is best-effort and fire-and-forget; its outcome never affects
// article state.
type Sharer interface {
	Available() bool
	Share(ctx context.Context, article domain.Article) error
}
