// Package app owns the reader's view state: the active category, the
// search query, and which of the three screens is showing. All mutation
// goes through the named operations below; the presentation layers are
// pure renderers of the derived views.
package app

import (
	"log/slog"

	"news_reader/internal/domain"
	"news_reader/internal/service"
)

type ScreenKind int

const (
	ScreenList ScreenKind = iota
	ScreenArticle
	ScreenOffline
)

func (k ScreenKind) String() string {
	switch k {
	case ScreenArticle:
		return "article"
	case ScreenOffline:
		return "offline"
	default:
		return "list"
	}
}

// Screen is the tagged union of top-level view states. Article is set
// only when Kind == ScreenArticle; origin records which screen opened the
// article so GoBack can return there.
type Screen struct {
	Kind    ScreenKind
	Article *domain.Article

	origin ScreenKind
}

type Session struct {
	feed   *service.FeedService
	logger *slog.Logger

	category string
	query    string
	screen   Screen
}

func NewSession(feed *service.FeedService, logger *slog.Logger) *Session {
	return &Session{
		feed:     feed,
		logger:   logger,
		category: domain.CategoryHome,
		screen:   Screen{Kind: ScreenList},
	}
}

func (s *Session) Screen() Screen { return s.screen }

func (s *Session) ActiveCategory() string { return s.category }

func (s *Session) Query() string { return s.query }

// Offline reports whether the offline shell is in effect, including while
// a saved article opened from the offline screen is showing.
func (s *Session) Offline() bool {
	if s.screen.Kind == ScreenOffline {
		return true
	}
	return s.screen.Kind == ScreenArticle && s.screen.origin == ScreenOffline
}

// Browse derives the list-screen view for the active category.
func (s *Session) Browse() domain.CategoryView {
	return s.feed.Browse(s.category)
}

// SearchResults derives the bounded match set for the current query.
func (s *Session) SearchResults() domain.SearchView {
	return s.feed.Search(s.query)
}

// Saved derives the offline-screen view.
func (s *Session) Saved() domain.OfflineView {
	return s.feed.Saved()
}

func (s *Session) SelectCategory(category string) {
	s.category = category
}

func (s *Session) SetQuery(query string) {
	s.query = query
}

// ToggleBookmark flips the flag and, when the toggled article is open,
// refreshes the open copy so the screen reflects the new state.
func (s *Session) ToggleBookmark(id string) {
	if !s.feed.ToggleBookmark(id) {
		return
	}
	if s.screen.Kind == ScreenArticle && s.screen.Article != nil && s.screen.Article.ID == id {
		if a, ok := s.feed.Article(id); ok {
			s.screen.Article = &a
		}
	}
}

// SelectArticle opens an article from the list screen, or from the
// offline screen when the article is bookmarked. Unknown ids and
// non-saved articles while offline are silent no-ops.
func (s *Session) SelectArticle(id string) {
	a, ok := s.feed.Article(id)
	if !ok {
		return
	}

	switch s.screen.Kind {
	case ScreenList:
		s.screen = Screen{Kind: ScreenArticle, Article: &a, origin: ScreenList}
	case ScreenOffline:
		if !a.IsBookmarked {
			return
		}
		s.screen = Screen{Kind: ScreenArticle, Article: &a, origin: ScreenOffline}
	}
}

// GoBack closes an open article, returning to the screen that opened it,
// or leaves the offline screen for the list.
func (s *Session) GoBack() {
	switch s.screen.Kind {
	case ScreenArticle:
		s.screen = Screen{Kind: s.screen.origin}
	case ScreenOffline:
		s.screen = Screen{Kind: ScreenList}
	}
}

// SetOffline applies a network status flip. Going offline supersedes
// whatever is showing, including an open article; coming back online
// only matters when the offline screen (or an article opened from it)
// is up.
func (s *Session) SetOffline(offline bool) {
	if offline {
		if s.screen.Kind != ScreenOffline {
			s.logger.Debug("entering offline view", "from", s.screen.Kind.String())
			s.screen = Screen{Kind: ScreenOffline}
		}
		return
	}

	switch s.screen.Kind {
	case ScreenOffline:
		s.screen = Screen{Kind: ScreenList}
	case ScreenArticle:
		if s.screen.origin == ScreenOffline {
			s.screen.origin = ScreenList
		}
	}
}
