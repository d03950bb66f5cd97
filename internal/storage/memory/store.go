// Package memory holds the canonical article collection for the lifetime
// of the process. The collection is seeded once; bookmark toggling is the
// only mutation path. Insertion order is preserved across every read.
package memory

import (
	"sync"

	"news_reader/internal/domain"
)

type Store struct {
	mu       sync.RWMutex
	articles []domain.Article
	index    map[string]int
}

func NewStore(articles []domain.Article) *Store {
	s := &Store{
		articles: make([]domain.Article, len(articles)),
		index:    make(map[string]int, len(articles)),
	}
	copy(s.articles, articles)
	for i, a := range s.articles {
		s.index[a.ID] = i
	}
	return s
}

// Articles returns a snapshot of the collection in canonical order.
func (s *Store) Articles() []domain.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Article, len(s.articles))
	copy(out, s.articles)
	return out
}

func (s *Store) Get(id string) (domain.Article, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return domain.Article{}, false
	}
	return s.articles[i], true
}

// ToggleBookmark flips the bookmark flag of the article with the given id.
// An unknown id is a silent no-op: ids only ever come from the store itself.
// The returned bool reports whether anything changed.
func (s *Store) ToggleBookmark(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return false
	}
	s.articles[i].IsBookmarked = !s.articles[i].IsBookmarked
	return true
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.articles)
}
