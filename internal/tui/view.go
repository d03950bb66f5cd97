package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"news_reader/internal/app"
	"news_reader/internal/domain"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	switch m.session.Screen().Kind {
	case app.ScreenArticle:
		b.WriteString(m.renderArticleScreen())
	case app.ScreenOffline:
		b.WriteString(m.renderOfflineScreen())
	default:
		b.WriteString(m.renderListScreen())
	}

	if m.installPrompt {
		b.WriteString("\n")
		b.WriteString(bannerStyle.Render("Install this reader? Press 'i' to add, 'x' to dismiss"))
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.helpText()))

	return b.String()
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("News Reader")
	if m.session.Offline() {
		return lipgloss.JoinHorizontal(lipgloss.Top, title, " ", offlineStyle.Render("OFFLINE"))
	}
	return title
}

func (m Model) renderListScreen() string {
	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	if m.searching || m.searchInput.Value() != "" {
		b.WriteString(m.searchInput.View())
		b.WriteString("\n")
	}

	if sv := m.session.SearchResults(); sv.QueryActive {
		if len(sv.Results) == 0 {
			b.WriteString("\n")
			b.WriteString(mutedStyle.Render(fmt.Sprintf("No articles match %q.", strings.TrimSpace(m.searchInput.Value()))))
			b.WriteString("\n")
			return b.String()
		}
		b.WriteString("\n")
		for i, a := range sv.Results {
			b.WriteString(m.renderRow(a, i == m.cursor, false))
		}
		return b.String()
	}

	cv := m.session.Browse()
	if cv.Featured == nil {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("Nothing here yet. Check back soon."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(m.renderFeatured(*cv.Featured, m.cursor == 0))
	b.WriteString("\n")
	for i, a := range cv.Regular {
		b.WriteString(m.renderRow(a, i+1 == m.cursor, false))
	}
	return b.String()
}

func (m Model) renderArticleScreen() string {
	screen := m.session.Screen()
	if screen.Article == nil {
		return ""
	}
	a := *screen.Article

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(cursorStyle.Render(m.truncate(a.Title)))
	if a.IsBookmarked {
		b.WriteString(" ")
		b.WriteString(bookmarkStyle.Render("★"))
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.articleMeta(a)))
	b.WriteString("\n\n")
	if m.ready {
		b.WriteString(m.viewport.View())
	} else {
		b.WriteString(m.renderArticleBody(a))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderOfflineScreen() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(offlineStyle.Render("Saved for offline"))
	b.WriteString("\n\n")

	saved := m.session.Saved().Saved
	if len(saved) == 0 {
		b.WriteString(mutedStyle.Render("No saved articles yet. Bookmark articles to read them here."))
		b.WriteString("\n")
		return b.String()
	}

	for i, a := range saved {
		b.WriteString(m.renderRow(a, i == m.cursor, true))
	}
	return b.String()
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(m.categories))
	for i, c := range m.categories {
		if i == m.catIndex {
			tabs = append(tabs, activeTabStyle.Render(c))
		} else {
			tabs = append(tabs, tabStyle.Render(c))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderFeatured(a domain.Article, selected bool) string {
	marker := "  "
	if selected {
		marker = cursorStyle.Render("▸ ")
	}
	card := fmt.Sprintf("%s\n%s\n%s",
		cursorStyle.Render(m.truncate(a.Title)),
		m.truncate(a.Excerpt),
		mutedStyle.Render(m.articleMeta(a)),
	)
	return marker + featuredStyle.Render(card) + "\n"
}

func (m Model) renderRow(a domain.Article, selected, offline bool) string {
	marker := "  "
	if selected {
		marker = cursorStyle.Render("▸ ")
	}

	mark := "  "
	if a.IsBookmarked {
		mark = bookmarkStyle.Render("★ ")
	}

	title := m.truncate(a.Title)
	if selected {
		title = cursorStyle.Render(title)
	}

	meta := m.articleMeta(a)
	if offline {
		meta = fmt.Sprintf("%s · %s", a.Category, a.ReadTime)
	}

	return fmt.Sprintf("%s%s%s\n    %s\n", marker, mark, title, mutedStyle.Render(meta))
}

func (m Model) renderArticleBody(a domain.Article) string {
	width := m.width - 4
	if width < 20 {
		width = 76
	}
	return lipgloss.NewStyle().Width(width).Render(a.Content)
}

func (m Model) articleMeta(a domain.Article) string {
	return fmt.Sprintf("%s · %s · %s · %s",
		a.Category, a.Author, a.PublishedAt.Format("Jan 2, 2006"), a.ReadTime)
}

func (m Model) truncate(s string) string {
	width := m.width - 8
	if width < 20 {
		width = 72
	}
	return runewidth.Truncate(s, width, "…")
}

func (m Model) helpText() string {
	if m.searching {
		return "type to search · enter keep · esc clear"
	}
	switch m.session.Screen().Kind {
	case app.ScreenArticle:
		return "↑/↓ scroll · b bookmark · s share · esc back · q quit"
	case app.ScreenOffline:
		return "↑/↓ move · enter read · b unsave · r retry · q quit"
	default:
		return "←/→ category · ↑/↓ move · enter read · / search · b bookmark · s share · o offline · q quit"
	}
}
