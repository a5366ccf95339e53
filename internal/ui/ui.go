package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/soundvault/soundvault/internal/library"
)

// Section enumerates the browsable catalog sections.
type Section int

const (
	ArtistsSection Section = iota
	AlbumsSection
	TracksSection
	PlaylistsSection
)

func (s Section) String() string {
	switch s {
	case ArtistsSection:
		return "Artists"
	case AlbumsSection:
		return "Albums"
	case TracksSection:
		return "Tracks"
	case PlaylistsSection:
		return "Playlists"
	default:
		return "Unknown"
	}
}

// ViewState represents the current view in the TUI.
type ViewState int

const (
	SectionView ViewState = iota
	BrowseView
	DetailView
)

// Model represents the TUI application state.
type Model struct {
	lib         *library.Library
	view        ViewState
	section     Section
	width       int
	height      int
	sectionList list.Model
	browseList  list.Model
	detailList  list.Model
	help        help.Model
	keys        keyMap
}

// NewModel creates a TUI model over the given catalog.
func NewModel(lib *library.Library) *Model {
	stats := lib.Statistics()
	items := []list.Item{
		sectionItem{section: ArtistsSection, count: stats.Artists},
		sectionItem{section: AlbumsSection, count: stats.Albums},
		sectionItem{section: TracksSection, count: stats.Tracks},
		sectionItem{section: PlaylistsSection, count: stats.Playlists},
	}

	sections := list.New(items, list.NewDefaultDelegate(), 0, 0)
	sections.Title = "Catalog"
	sections.SetShowHelp(false)

	return &Model{
		lib:         lib,
		view:        SectionView,
		sectionList: sections,
		help:        help.New(),
		keys:        newKeyMap(),
	}
}

// Init implements [tea.Model]. The catalog is already in memory so there is
// nothing to kick off.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.sectionList.SetSize(msg.Width-4, msg.Height-8)
		m.browseList.SetSize(msg.Width-4, msg.Height-8)
		m.detailList.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case SectionView:
			return m.handleSectionKeys(msg)
		case BrowseView:
			return m.handleBrowseKeys(msg)
		case DetailView:
			return m.handleDetailKeys(msg)
		}
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case SectionView:
		return m.renderList(m.sectionList, []key.Binding{m.keys.enter, m.keys.quit})
	case BrowseView:
		return m.renderList(m.browseList, []key.Binding{m.keys.enter, m.keys.back, m.keys.quit})
	case DetailView:
		return m.renderList(m.detailList, []key.Binding{m.keys.back, m.keys.quit})
	default:
		return ""
	}
}

func (m *Model) handleSectionKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		if item, ok := m.sectionList.SelectedItem().(sectionItem); ok {
			m.openSection(item.section)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.sectionList, cmd = m.sectionList.Update(msg)
	return m, cmd
}

func (m *Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = SectionView
		return m, nil
	case "enter":
		m.openDetail(m.browseList.SelectedItem())
		return m, nil
	}

	var cmd tea.Cmd
	m.browseList, cmd = m.browseList.Update(msg)
	return m, cmd
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = BrowseView
		return m, nil
	}

	var cmd tea.Cmd
	m.detailList, cmd = m.detailList.Update(msg)
	return m, cmd
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case SectionView:
		m.sectionList, cmd = m.sectionList.Update(msg)
	case BrowseView:
		m.browseList, cmd = m.browseList.Update(msg)
	case DetailView:
		m.detailList, cmd = m.detailList.Update(msg)
	}
	return m, cmd
}

// openSection builds the browse list for section and switches to it.
func (m *Model) openSection(section Section) {
	var items []list.Item
	switch section {
	case ArtistsSection:
		for _, artist := range m.lib.Artists() {
			items = append(items, artistItem{artist: artist})
		}
	case AlbumsSection:
		for _, album := range m.lib.Albums() {
			items = append(items, albumItem{album: album})
		}
	case TracksSection:
		for _, track := range m.lib.Tracks() {
			items = append(items, trackItem{track: track})
		}
	case PlaylistsSection:
		for _, playlist := range m.lib.Playlists() {
			items = append(items, playlistItem{playlist: playlist})
		}
	}

	m.section = section
	m.browseList = list.New(items, list.NewDefaultDelegate(), m.width-4, m.height-8)
	m.browseList.Title = section.String()
	m.browseList.SetShowHelp(false)
	m.view = BrowseView
}

// openDetail drills into the selected entity. Tracks have no further level,
// so selecting one is a no-op.
func (m *Model) openDetail(selected list.Item) {
	var items []list.Item
	var title string

	switch item := selected.(type) {
	case artistItem:
		for _, album := range item.artist.Albums {
			items = append(items, albumItem{album: album})
		}
		title = fmt.Sprintf("Albums by %s", item.artist.Name)
	case albumItem:
		for _, track := range item.album.Tracks {
			items = append(items, trackItem{track: track})
		}
		title = item.album.Title
	case playlistItem:
		for _, entry := range item.playlist.Entries {
			items = append(items, trackItem{track: entry.Track})
		}
		title = fmt.Sprintf("Tracks in '%s'", item.playlist.Name)
	default:
		return
	}

	m.detailList = list.New(items, list.NewDefaultDelegate(), m.width-4, m.height-8)
	m.detailList.Title = title
	m.detailList.SetShowHelp(false)
	m.view = DetailView
}

func (m *Model) renderList(l list.Model, helpKeys []key.Binding) string {
	header := styles.title.Render("soundvault")
	footer := styles.help.Render(m.help.ShortHelpView(helpKeys))
	return fmt.Sprintf("%s\n%s\n\n%s", header, l.View(), footer)
}
