package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"news_reader/internal/app"
	"news_reader/internal/share"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case statusMsg:
		return m.handleStatus(msg)
	case shareResultMsg:
		return m.handleShareResult(msg)
	case noticeExpiredMsg:
		m.notice = ""
		return m, nil
	case installPromptMsg:
		if !m.installDismissed && m.session.Screen().Kind == app.ScreenList {
			m.installPrompt = true
		}
		return m, nil
	}

	if m.session.Screen().Kind == app.ScreenArticle {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	contentHeight := msg.Height - 6
	if contentHeight < 1 {
		contentHeight = 1
	}
	if !m.ready {
		m.viewport = viewport.New(msg.Width, contentHeight)
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = contentHeight
	}

	if screen := m.session.Screen(); screen.Kind == app.ScreenArticle && screen.Article != nil {
		m.viewport.SetContent(m.renderArticleBody(*screen.Article))
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch m.session.Screen().Kind {
	case app.ScreenArticle:
		return m.handleArticleKey(msg)
	case app.ScreenOffline:
		return m.handleOfflineKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.session.SetQuery("")
		m.cursor = 0
		return m, nil
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down":
		if m.cursor < len(m.visibleRows())-1 {
			m.cursor++
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.session.SetQuery(m.searchInput.Value())
	m.cursor = 0
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.searching = true
		m.searchInput.Focus()
		return m, nil
	case "tab", "right", "l":
		m.catIndex = (m.catIndex + 1) % len(m.categories)
		m.session.SelectCategory(m.categories[m.catIndex])
		m.cursor = 0
		return m, nil
	case "shift+tab", "left", "h":
		m.catIndex = (m.catIndex + len(m.categories) - 1) % len(m.categories)
		m.session.SelectCategory(m.categories[m.catIndex])
		m.cursor = 0
		return m, nil
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.visibleRows())-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		return m.openCursorArticle()
	case "b":
		return m.toggleCursorBookmark()
	case "s":
		if a, ok := m.cursorArticle(); ok {
			return m, shareArticle(m.sharer, a)
		}
		return m, nil
	case "o":
		m.manualOffline = true
		m.session.SetOffline(true)
		m.cursor = 0
		return m.showNotice("Offline preview: showing saved articles")
	case "i":
		if m.installPrompt {
			m.installPrompt = false
			m.installDismissed = true
			return m.showNotice("Reader added to your home screen")
		}
		return m, nil
	case "x":
		if m.installPrompt {
			m.installPrompt = false
			m.installDismissed = true
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleArticleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "backspace":
		m.session.GoBack()
		m.clampCursor()
		return m, nil
	case "b":
		if screen := m.session.Screen(); screen.Article != nil {
			wasSaved := screen.Article.IsBookmarked
			m.session.ToggleBookmark(screen.Article.ID)
			if wasSaved {
				return m.showNotice("Removed from saved articles")
			}
			return m.showNotice("Saved for offline reading")
		}
		return m, nil
	case "s":
		if screen := m.session.Screen(); screen.Article != nil {
			return m, shareArticle(m.sharer, *screen.Article)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleOfflineKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "r", "esc", "backspace":
		m.manualOffline = false
		m.session.SetOffline(false)
		m.session.GoBack()
		m.cursor = 0
		return m.showNotice("Back online")
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.visibleRows())-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		return m.openCursorArticle()
	case "b":
		return m.toggleCursorBookmark()
	}
	return m, nil
}

func (m Model) openCursorArticle() (tea.Model, tea.Cmd) {
	a, ok := m.cursorArticle()
	if !ok {
		return m, nil
	}
	m.session.SelectArticle(a.ID)
	if screen := m.session.Screen(); screen.Kind == app.ScreenArticle && screen.Article != nil {
		m.viewport.SetContent(m.renderArticleBody(*screen.Article))
		m.viewport.GotoTop()
	}
	return m, nil
}

func (m Model) toggleCursorBookmark() (tea.Model, tea.Cmd) {
	a, ok := m.cursorArticle()
	if !ok {
		return m, nil
	}
	m.session.ToggleBookmark(a.ID)
	m.clampCursor()
	if a.IsBookmarked {
		return m.showNotice("Removed from saved articles")
	}
	return m.showNotice("Saved for offline reading")
}

func (m Model) handleStatus(msg statusMsg) (tea.Model, tea.Cmd) {
	resubscribe := waitForStatus(m.statusUpdates)

	// A manual preview holds until the user retries.
	if m.manualOffline {
		return m, resubscribe
	}

	m.session.SetOffline(!msg.online)
	m.clampCursor()

	if msg.online {
		model, cmd := m.showNotice("Back online")
		return model, tea.Batch(cmd, resubscribe)
	}
	model, cmd := m.showNotice("You're offline: showing saved articles")
	return model, tea.Batch(cmd, resubscribe)
}

func (m Model) handleShareResult(msg shareResultMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.err == nil:
		return m.showNotice("Article copied to clipboard")
	case errors.Is(msg.err, share.ErrUnavailable):
		return m.showNotice("Sharing isn't available on this device")
	default:
		m.logger.Warn("share failed", "error", msg.err)
		return m.showNotice("Couldn't share the article")
	}
}

func (m Model) showNotice(text string) (tea.Model, tea.Cmd) {
	m.notice = text
	return m, expireNotice(m.noticeDuration)
}
