package service

import (
	"log/slog"
	"strings"

	"news_reader/internal/config"
	"news_reader/internal/domain"
)

// FeedService derives every screen's view model from the current store
// snapshot. Derivations are pure and recomputed on each call: no caching,
// no staleness window.
type FeedService struct {
	store  ArticleStore
	logger *slog.Logger
	config config.SearchConfig
}

func NewFeedService(store ArticleStore, logger *slog.Logger, cfg config.SearchConfig) *FeedService {
	return &FeedService{
		store:  store,
		logger: logger,
		config: cfg,
	}
}

// Browse projects the collection onto the selected category and splits it
// into a featured article plus the remainder. The "home" sentinel means no
// filter; a category matching nothing yields the explicit empty view.
func (s *FeedService) Browse(category string) domain.CategoryView {
	filtered := filterByCategory(s.store.Articles(), category)
	return composeCategoryView(filtered)
}

// Search returns the bounded match set for a free-text query. A query that
// trims to empty is inert, which is distinct from a genuine no-match.
func (s *FeedService) Search(query string) domain.SearchView {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return domain.SearchView{Results: []domain.Article{}, QueryActive: false}
	}

	results := searchArticles(s.store.Articles(), trimmed, s.config.MaxResults)
	s.logger.Debug("search", "query", trimmed, "results", len(results))

	return domain.SearchView{Results: results, QueryActive: true}
}

// Saved returns the bookmarked subset in canonical order, independent of
// the active category or query.
func (s *FeedService) Saved() domain.OfflineView {
	return domain.OfflineView{Saved: savedArticles(s.store.Articles())}
}

// ToggleBookmark flips the flag for the given id; unknown ids are ignored.
func (s *FeedService) ToggleBookmark(id string) bool {
	changed := s.store.ToggleBookmark(id)
	if changed {
		s.logger.Debug("toggled bookmark", "id", id)
	}
	return changed
}

func (s *FeedService) Article(id string) (domain.Article, bool) {
	return s.store.Get(id)
}

func filterByCategory(articles []domain.Article, category string) []domain.Article {
	if category == domain.CategoryHome {
		return articles
	}

	filtered := make([]domain.Article, 0, len(articles))
	for _, a := range articles {
		if a.Category == category {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// searchArticles matches by case-insensitive substring containment over
// title, excerpt, and category. No tokenization, no ranking: results are
// the first max matches in collection order.
func searchArticles(articles []domain.Article, query string, max int) []domain.Article {
	needle := strings.ToLower(query)

	results := make([]domain.Article, 0, max)
	for _, a := range articles {
		if len(results) == max {
			break
		}
		if strings.Contains(strings.ToLower(a.Title), needle) ||
			strings.Contains(strings.ToLower(a.Excerpt), needle) ||
			strings.Contains(strings.ToLower(a.Category), needle) {
			results = append(results, a)
		}
	}
	return results
}

func composeCategoryView(filtered []domain.Article) domain.CategoryView {
	if len(filtered) == 0 {
		return domain.CategoryView{Featured: nil, Regular: []domain.Article{}}
	}

	featured := filtered[0]
	regular := make([]domain.Article, len(filtered)-1)
	copy(regular, filtered[1:])

	return domain.CategoryView{Featured: &featured, Regular: regular}
}

func savedArticles(articles []domain.Article) []domain.Article {
	saved := make([]domain.Article, 0, len(articles))
	for _, a := range articles {
		if a.IsBookmarked {
			saved = append(saved, a)
		}
	}
	return saved
}
