// Package tui renders the reader: a pure view over the session's derived
// state, with keyboard input mapped to the session's named operations.
package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"news_reader/internal/app"
	"news_reader/internal/config"
	"news_reader/internal/domain"
	"news_reader/internal/service"
)

type Model struct {
	session *app.Session
	sharer  service.Sharer
	logger  *slog.Logger

	categories []string
	catIndex   int

	searchInput textinput.Model
	searching   bool

	viewport viewport.Model
	ready    bool

	cursor int
	width  int
	height int

	notice         string
	noticeDuration time.Duration

	installDelay     time.Duration
	installPrompt    bool
	installDismissed bool

	// manualOffline marks a user-triggered offline preview; watcher
	// updates are held back until retry so the preview sticks.
	manualOffline bool
	statusUpdates <-chan bool
}

func NewModel(session *app.Session, sharer service.Sharer, cfg *config.Config, statusUpdates <-chan bool, logger *slog.Logger) Model {
	input := textinput.New()
	input.Placeholder = "search articles"
	input.Prompt = "/ "
	input.CharLimit = 80

	return Model{
		session:        session,
		sharer:         sharer,
		logger:         logger,
		categories:     cfg.Categories,
		searchInput:    input,
		noticeDuration: cfg.UI.NoticeDuration,
		installDelay:   cfg.UI.InstallPromptDelay,
		statusUpdates:  statusUpdates,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		waitForStatus(m.statusUpdates),
		installPromptAfter(m.installDelay),
	)
}

// visibleRows lists the articles the cursor can move over on the current
// screen: search results while a query is active, otherwise the composed
// category view (featured first), or the saved list when offline.
func (m Model) visibleRows() []domain.Article {
	switch m.session.Screen().Kind {
	case app.ScreenOffline:
		return m.session.Saved().Saved
	case app.ScreenList:
		if sv := m.session.SearchResults(); sv.QueryActive {
			return sv.Results
		}
		cv := m.session.Browse()
		if cv.Featured == nil {
			return []domain.Article{}
		}
		rows := make([]domain.Article, 0, len(cv.Regular)+1)
		rows = append(rows, *cv.Featured)
		rows = append(rows, cv.Regular...)
		return rows
	default:
		return []domain.Article{}
	}
}

func (m Model) cursorArticle() (domain.Article, bool) {
	rows := m.visibleRows()
	if len(rows) == 0 || m.cursor >= len(rows) {
		return domain.Article{}, false
	}
	return rows[m.cursor], true
}

func (m *Model) clampCursor() {
	if n := len(m.visibleRows()); m.cursor >= n {
		if n == 0 {
			m.cursor = 0
		} else {
			m.cursor = n - 1
		}
	}
}
