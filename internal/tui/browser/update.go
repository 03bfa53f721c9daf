package browser

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		if !m.view.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case catalogLoadedMsg:
		m.view = m.view.ApplyCatalog(msg.Result)
		m.clampCursor()
		m.log.WithFields(map[string]any{
			"provider": msg.Result.Provider.String(),
			"featured": msg.Result.Featured != nil,
		}).Debug("catalog applied")
		// Text typed while loading is searched once the provider is known.
		return m, m.dispatchSearch()

	case searchResultMsg:
		if !msg.Applied {
			return m, nil
		}
		if msg.Provider != m.view.Provider {
			m.log.WithFields(map[string]any{
				"provider": msg.Provider.String(),
				"active":   m.view.Provider.String(),
			}).Debug("search result from inactive provider dropped")
			return m, nil
		}
		m.view = m.view.ApplySearch(msg.Items)
		m.clampCursor()
		return m, nil
	}

	if m.focus == focusSearch {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.view.Selected != nil {
		return m.handleModalKey(msg)
	}
	if m.focus == focusSearch {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Search):
		m.focus = focusSearch
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Theme):
		m.view = m.view.ToggleTheme()
		m.applyTheme()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveRow(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveRow(1)
		return m, nil

	case key.Matches(msg, m.keys.Left):
		m.moveCol(-1)
		return m, nil

	case key.Matches(msg, m.keys.Right):
		m.moveCol(1)
		return m, nil

	case key.Matches(msg, m.keys.Open):
		if item, ok := m.focusedItem(); ok {
			m.view = m.view.SetSelected(&item)
		}
		return m, nil

	case key.Matches(msg, m.keys.Featured):
		if m.view.Featured != nil {
			m.view = m.view.SetSelected(m.view.Featured)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Open):
		m.view = m.view.SetSelected(nil)
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Theme):
		m.view = m.view.ToggleTheme()
		m.applyTheme()
		return m, nil
	}
	return m, nil
}

// handleSearchKey feeds the search box. Every change of its value issues a
// search against the active provider once the catalog has loaded.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc || msg.Type == tea.KeyEnter {
		m.focus = focusRows
		m.search.Blur()
		return m, nil
	}

	before := m.search.Value()
	var inputCmd tea.Cmd
	m.search, inputCmd = m.search.Update(msg)

	query := m.search.Value()
	if query == before {
		return m, inputCmd
	}

	m.view = m.view.SetQuery(query)
	return m, tea.Batch(inputCmd, m.dispatchSearch())
}

// dispatchSearch searches the current query. It returns nil for an empty
// query or while the startup load is still deciding the provider.
func (m Model) dispatchSearch() tea.Cmd {
	query := m.view.Query
	if query == "" || m.view.Loading {
		return nil
	}

	m.log.WithFields(map[string]any{
		"provider": m.view.Provider.String(),
		"query":    query,
	}).Debug("search dispatched")
	return searchCmd(m.ctx, m.svc, m.view.Provider, query)
}
