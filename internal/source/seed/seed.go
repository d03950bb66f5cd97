// Package seed provides the built-in article catalog. It stands in for a
// content API behind the same Source contract, so a real feed can be
// substituted without touching the filter, search, or composer logic.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	"news_reader/internal/domain"
)

const (
	SourceID   = "seed"
	SourceName = "Built-in Catalog"
)

//go:embed articles.yaml
var catalog []byte

type Source struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Source {
	return &Source{logger: logger.With("source", SourceID)}
}

// ID returns the source identifier.
func (s *Source) ID() string {
	return SourceID
}

// Name returns human-readable name.
func (s *Source) Name() string {
	return SourceName
}

type catalogFile struct {
	Articles []domain.Article `yaml:"articles"`
}

// Load decodes the embedded catalog into domain articles, preserving
// file order. That order is the canonical display order for the session.
func (s *Source) Load(_ context.Context) ([]domain.Article, error) {
	var f catalogFile
	if err := yaml.Unmarshal(catalog, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(f.Articles))
	for _, a := range f.Articles {
		if a.ID == "" {
			return nil, fmt.Errorf("catalog article %q has empty id", a.Title)
		}
		if _, dup := seen[a.ID]; dup {
			return nil, fmt.Errorf("catalog contains duplicate id %q", a.ID)
		}
		seen[a.ID] = struct{}{}
	}

	s.logger.Debug("loaded catalog", "articles", len(f.Articles))

	return f.Articles, nil
}
