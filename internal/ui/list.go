package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/soundvault/soundvault/internal/models"
	"github.com/soundvault/soundvault/internal/shared"
)

var (
	_ list.Item = sectionItem{}
	_ list.Item = artistItem{}
	_ list.Item = albumItem{}
	_ list.Item = trackItem{}
	_ list.Item = playlistItem{}
)

// sectionItem is a top-level menu entry for one catalog section.
type sectionItem struct {
	section Section
	count   int
}

func (i sectionItem) FilterValue() string { return i.section.String() }
func (i sectionItem) Title() string       { return i.section.String() }
func (i sectionItem) Description() string { return fmt.Sprintf("%d entries", i.count) }

// artistItem wraps [models.Artist] to implement [list.Item].
type artistItem struct {
	artist *models.Artist
}

func (i artistItem) FilterValue() string { return i.artist.Name }
func (i artistItem) Title() string       { return i.artist.Name }
func (i artistItem) Description() string {
	desc := fmt.Sprintf("%d albums", len(i.artist.Albums))
	if i.artist.Bio != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.artist.Bio)
	}
	return desc
}

// albumItem wraps [models.Album] to implement [list.Item].
type albumItem struct {
	album *models.Album
}

func (i albumItem) FilterValue() string { return i.album.Title }
func (i albumItem) Title() string       { return i.album.Title }
func (i albumItem) Description() string {
	desc := fmt.Sprintf("%s • %d tracks", i.album.Artist.Name, len(i.album.Tracks))
	if i.album.ReleaseDate != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.album.ReleaseDate)
	}
	return desc
}

// trackItem wraps [models.Track] to implement [list.Item].
type trackItem struct {
	track *models.Track
}

func (i trackItem) FilterValue() string { return i.track.Title }
func (i trackItem) Title() string       { return i.track.Title }
func (i trackItem) Description() string {
	desc := fmt.Sprintf("%s • %s", i.track.Artist.Name, shared.FormatDuration(i.track.Duration))
	if album := i.track.AlbumTitle(); album != "" {
		desc = fmt.Sprintf("%s • %s", desc, album)
	}
	return desc
}

// playlistItem wraps [models.Playlist] to implement [list.Item].
type playlistItem struct {
	playlist *models.Playlist
}

func (i playlistItem) FilterValue() string { return i.playlist.Name }
func (i playlistItem) Title() string       { return i.playlist.Name }
func (i playlistItem) Description() string {
	visibility := styles.ok.Render(shared.VisibilityString(i.playlist.Public))
	if !i.playlist.Public {
		visibility = styles.warn.Render(shared.VisibilityString(i.playlist.Public))
	}
	desc := fmt.Sprintf("%d tracks • %s", len(i.playlist.Entries), visibility)
	if i.playlist.Owner != nil {
		desc = fmt.Sprintf("%s • by %s", desc, i.playlist.Owner.Username)
	}
	return desc
}
