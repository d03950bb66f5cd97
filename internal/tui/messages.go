package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"news_reader/internal/domain"
	"news_reader/internal/service"
)

type statusMsg struct {
	online bool
}

type shareResultMsg struct {
	err error
}

type noticeExpiredMsg struct{}

type installPromptMsg struct{}

// waitForStatus blocks on the watcher channel and resubscribes after each
// delivery.
func waitForStatus(updates <-chan bool) tea.Cmd {
	return func() tea.Msg {
		online, ok := <-updates
		if !ok {
			return nil
		}
		return statusMsg{online: online}
	}
}

func shareArticle(sharer service.Sharer, article domain.Article) tea.Cmd {
	return func() tea.Msg {
		return shareResultMsg{err: sharer.Share(context.Background(), article)}
	}
}

func expireNotice(after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return noticeExpiredMsg{}
	})
}

func installPromptAfter(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return installPromptMsg{}
	})
}
