package service

import (
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"news_reader/internal/config"
	"news_reader/internal/domain"
	"news_reader/internal/service/mocks"
)

func fixtureArticles() []domain.Article {
	published := time.Date(2025, 3, 14, 8, 30, 0, 0, time.UTC)
	return []domain.Article{
		{ID: "1", Title: "Global Markets Rally as Economic Outlook Brightens", Excerpt: "Stock indices climbed for a third straight session.", Category: "breaking", Author: "Priya Raman", PublishedAt: published, ReadTime: "4 min read"},
		{ID: "2", Title: "Small Retailers Bet Big on Neighbourhood Revival", Excerpt: "Independent shops are expanding despite a tough economic climate.", Category: "business", IsBookmarked: true},
		{ID: "3", Title: "Underdogs Stun Champions in Rugby Cup Thriller", Excerpt: "A last-minute drop goal sealed a historic upset.", Category: "sport"},
		{ID: "4", Title: "Lawmakers Clash Over Landmark Housing Bill", Excerpt: "A marathon committee session ended without agreement.", Category: "politics"},
		{ID: "5", Title: "The Quiet Return of the Neighbourhood Supper Club", Excerpt: "Home cooks are turning dining rooms into the hottest tables in town.", Category: "lifestyle", IsBookmarked: true},
		{ID: "6", Title: "Open-Source Chip Design Hits a Manufacturing Milestone", Excerpt: "The first production run shipped to contributors this week.", Category: "technology"},
	}
}

type FeedServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	store *mocks.MockArticleStore

	service *FeedService
}

func (s *FeedServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = mocks.NewMockArticleStore(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewFeedService(s.store, logger, config.SearchConfig{MaxResults: 8})
}

func (s *FeedServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestFeedServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FeedServiceTestSuite))
}

func (s *FeedServiceTestSuite) ids(articles []domain.Article) []string {
	ids := make([]string, len(articles))
	for i, a := range articles {
		ids[i] = a.ID
	}
	return ids
}

func (s *FeedServiceTestSuite) TestBrowse_HomeReturnsAllInOrder() {
	s.store.EXPECT().Articles().Return(fixtureArticles())

	view := s.service.Browse(domain.CategoryHome)

	s.Require().NotNil(view.Featured)
	s.Equal("1", view.Featured.ID)
	s.Equal([]string{"2", "3", "4", "5", "6"}, s.ids(view.Regular))
}

func (s *FeedServiceTestSuite) TestBrowse_SingleMatchCategory() {
	s.store.EXPECT().Articles().Return(fixtureArticles())

	view := s.service.Browse("sport")

	s.Require().NotNil(view.Featured)
	s.Equal("3", view.Featured.ID)
	s.Empty(view.Regular)
}

func (s *FeedServiceTestSuite) TestBrowse_UnknownCategoryYieldsEmptyState() {
	s.store.EXPECT().Articles().Return(fixtureArticles())

	view := s.service.Browse("opinion")

	s.Nil(view.Featured)
	s.NotNil(view.Regular)
	s.Empty(view.Regular)
}

func (s *FeedServiceTestSuite) TestSearch_WhitespaceQueryIsInert() {
	view := s.service.Search("   ")

	s.False(view.QueryActive)
	s.Empty(view.Results)
}

func (s *FeedServiceTestSuite) TestSearch_NoMatchIsActiveButEmpty() {
	s.store.EXPECT().Articles().Return(fixtureArticles())

	view := s.service.Search("zzz")

	s.True(view.QueryActive)
	s.Empty(view.Results)
}

func (s *FeedServiceTestSuite) TestSearch_MatchesTitleCaseInsensitive() {
	s.store.EXPECT().Articles().Return(fixtureArticles())

	view := s.service.Search("RUGBY")

	s.True(view.QueryActive)
	s.Equal([]string{"3"}, s.ids(view.Results))
}

func (s *FeedServiceTestSuite) TestSearch_MatchesTitleAndExcerpt() {
	s.store.EXPECT().Articles().Return(fixtureArticles())

	// "economic" sits in article 1's title and article 2's excerpt.
	view := s.service.Search("economic")

	s.Equal([]string{"1", "2"}, s.ids(view.Results))
}

func (s *FeedServiceTestSuite) TestSearch_MatchesCategory() {
	s.store.EXPECT().Articles().Return(fixtureArticles())

	view := s.service.Search("tech")

	s.Equal([]string{"6"}, s.ids(view.Results))
}

func (s *FeedServiceTestSuite) TestSearch_TrimsQueryBeforeMatching() {
	s.store.EXPECT().Articles().Return(fixtureArticles())

	view := s.service.Search("  rugby  ")

	s.Equal([]string{"3"}, s.ids(view.Results))
}

func (s *FeedServiceTestSuite) TestSaved_ReturnsBookmarkedSubsetInOrder() {
	s.store.EXPECT().Articles().Return(fixtureArticles())

	view := s.service.Saved()

	s.Equal([]string{"2", "5"}, s.ids(view.Saved))
}

func (s *FeedServiceTestSuite) TestToggleBookmark_Delegates() {
	s.store.EXPECT().ToggleBookmark("2").Return(true)
	s.store.EXPECT().ToggleBookmark("nope").Return(false)

	s.True(s.service.ToggleBookmark("2"))
	s.False(s.service.ToggleBookmark("nope"))
}

func TestFilterByCategory_Idempotent(t *testing.T) {
	articles := fixtureArticles()

	once := filterByCategory(articles, "business")
	twice := filterByCategory(once, "business")

	if len(once) != len(twice) {
		t.Fatalf("expected idempotent filter, got %d then %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Fatalf("order changed at %d: %s vs %s", i, once[i].ID, twice[i].ID)
		}
	}
}

func TestFilterByCategory_PreservesRelativeOrder(t *testing.T) {
	articles := []domain.Article{
		{ID: "a", Category: "sport"},
		{ID: "b", Category: "business"},
		{ID: "c", Category: "sport"},
		{ID: "d", Category: "sport"},
	}

	filtered := filterByCategory(articles, "sport")

	want := []string{"a", "c", "d"}
	if len(filtered) != len(want) {
		t.Fatalf("expected %d results, got %d", len(want), len(filtered))
	}
	for i, id := range want {
		if filtered[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, filtered[i].ID)
		}
	}
}

func TestSearchArticles_CapIsPrefixOfFullMatchSet(t *testing.T) {
	articles := make([]domain.Article, 12)
	for i := range articles {
		articles[i] = domain.Article{
			ID:    fmt.Sprintf("%d", i+1),
			Title: fmt.Sprintf("Budget update %d", i+1),
		}
	}

	results := searchArticles(articles, "budget", 8)

	if len(results) != 8 {
		t.Fatalf("expected cap of 8, got %d", len(results))
	}
	for i, a := range results {
		if want := fmt.Sprintf("%d", i+1); a.ID != want {
			t.Fatalf("result %d: expected id %s, got %s", i, want, a.ID)
		}
	}
}

func TestComposeCategoryView(t *testing.T) {
	x := domain.Article{ID: "x"}
	y := domain.Article{ID: "y"}
	z := domain.Article{ID: "z"}

	empty := composeCategoryView(nil)
	if empty.Featured != nil || len(empty.Regular) != 0 {
		t.Fatalf("empty input: expected {nil, []}, got %+v", empty)
	}

	single := composeCategoryView([]domain.Article{x})
	if single.Featured == nil || single.Featured.ID != "x" || len(single.Regular) != 0 {
		t.Fatalf("single input: expected featured x, got %+v", single)
	}

	full := composeCategoryView([]domain.Article{x, y, z})
	if full.Featured == nil || full.Featured.ID != "x" {
		t.Fatalf("expected featured x, got %+v", full.Featured)
	}
	if len(full.Regular) != 2 || full.Regular[0].ID != "y" || full.Regular[1].ID != "z" {
		t.Fatalf("expected regular [y z], got %+v", full.Regular)
	}
}
