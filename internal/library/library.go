// Package library owns the in-memory entity graph of the soundvault catalog
// and the catalog operations layered on top of it.
//
// The [Library] holds every loaded entity in five identifier-keyed,
// insertion-ordered collections. It enforces no uniqueness constraint beyond
// identifier-as-map-key; format-specific duplicate policies live with the
// parsers that apply them. The [Service] adds the user-facing operations
// (registration, login, playlist building, search, statistics).
package library

import (
	"github.com/soundvault/soundvault/internal/models"
)

// Library is the entity graph: five mappings from identifier to entity.
//
// The graph is process-local mutable state with no concurrent-access
// protection; callers serialize access.
type Library struct {
	users     *collection[*models.User]
	artists   *collection[*models.Artist]
	tracks    *collection[*models.Track]
	albums    *collection[*models.Album]
	playlists *collection[*models.Playlist]
}

// New creates an empty Library.
func New() *Library {
	return &Library{
		users:     newCollection[*models.User](),
		artists:   newCollection[*models.Artist](),
		tracks:    newCollection[*models.Track](),
		albums:    newCollection[*models.Album](),
		playlists: newCollection[*models.Playlist](),
	}
}

// Statistics aggregates entity counts and the sum of all track stream counters.
type Statistics struct {
	Users        int `json:"users_count" xml:"users_count"`
	Artists      int `json:"artists_count" xml:"artists_count"`
	Tracks       int `json:"tracks_count" xml:"tracks_count"`
	Albums       int `json:"albums_count" xml:"albums_count"`
	Playlists    int `json:"playlists_count" xml:"playlists_count"`
	TotalStreams int `json:"total_streams" xml:"total_streams"`
}

// Statistics computes the aggregate block included in every export.
func (l *Library) Statistics() Statistics {
	stats := Statistics{
		Users:     l.users.Len(),
		Artists:   l.artists.Len(),
		Tracks:    l.tracks.Len(),
		Albums:    l.albums.Len(),
		Playlists: l.playlists.Len(),
	}
	for _, track := range l.tracks.All() {
		stats.TotalStreams += track.StreamCount
	}
	return stats
}

// PutUser inserts or overwrites a user by id.
func (l *Library) PutUser(u *models.User) { l.users.Put(u.ID, u) }

// PutUserIfAbsent inserts a user only when its id is new, reporting whether it did.
func (l *Library) PutUserIfAbsent(u *models.User) bool { return l.users.PutIfAbsent(u.ID, u) }

// User returns the user with the given id.
func (l *Library) User(id string) (*models.User, bool) { return l.users.Get(id) }

// Users returns all users in insertion order.
func (l *Library) Users() []*models.User { return l.users.All() }

// FindUser returns the first user in insertion order satisfying pred.
func (l *Library) FindUser(pred func(*models.User) bool) (*models.User, bool) {
	return l.users.Find(pred)
}

// PutArtist inserts or overwrites an artist by id.
func (l *Library) PutArtist(a *models.Artist) { l.artists.Put(a.ID, a) }

// PutArtistIfAbsent inserts an artist only when its id is new, reporting whether it did.
func (l *Library) PutArtistIfAbsent(a *models.Artist) bool { return l.artists.PutIfAbsent(a.ID, a) }

// Artist returns the artist with the given id.
func (l *Library) Artist(id string) (*models.Artist, bool) { return l.artists.Get(id) }

// Artists returns all artists in insertion order.
func (l *Library) Artists() []*models.Artist { return l.artists.All() }

// FindArtist returns the first artist in insertion order satisfying pred.
func (l *Library) FindArtist(pred func(*models.Artist) bool) (*models.Artist, bool) {
	return l.artists.Find(pred)
}

// PutTrack inserts or overwrites a track by id.
func (l *Library) PutTrack(t *models.Track) { l.tracks.Put(t.ID, t) }

// PutTrackIfAbsent inserts a track only when its id is new, reporting whether it did.
func (l *Library) PutTrackIfAbsent(t *models.Track) bool { return l.tracks.PutIfAbsent(t.ID, t) }

// Track returns the track with the given id.
func (l *Library) Track(id string) (*models.Track, bool) { return l.tracks.Get(id) }

// HasTrack reports whether a track id is present.
func (l *Library) HasTrack(id string) bool { return l.tracks.Has(id) }

// Tracks returns all tracks in insertion order.
func (l *Library) Tracks() []*models.Track { return l.tracks.All() }

// PutAlbum inserts or overwrites an album by id.
func (l *Library) PutAlbum(a *models.Album) { l.albums.Put(a.ID, a) }

// PutAlbumIfAbsent inserts an album only when its id is new, reporting whether it did.
func (l *Library) PutAlbumIfAbsent(a *models.Album) bool { return l.albums.PutIfAbsent(a.ID, a) }

// Album returns the album with the given id.
func (l *Library) Album(id string) (*models.Album, bool) { return l.albums.Get(id) }

// HasAlbum reports whether an album id is present.
func (l *Library) HasAlbum(id string) bool { return l.albums.Has(id) }

// Albums returns all albums in insertion order.
func (l *Library) Albums() []*models.Album { return l.albums.All() }

// FindAlbum returns the first album in insertion order satisfying pred.
func (l *Library) FindAlbum(pred func(*models.Album) bool) (*models.Album, bool) {
	return l.albums.Find(pred)
}

// PutPlaylist inserts or overwrites a playlist by id.
func (l *Library) PutPlaylist(p *models.Playlist) { l.playlists.Put(p.ID, p) }

// PutPlaylistIfAbsent inserts a playlist only when its id is new, reporting whether it did.
func (l *Library) PutPlaylistIfAbsent(p *models.Playlist) bool {
	return l.playlists.PutIfAbsent(p.ID, p)
}

// Playlist returns the playlist with the given id.
func (l *Library) Playlist(id string) (*models.Playlist, bool) { return l.playlists.Get(id) }

// HasPlaylist reports whether a playlist id is present.
func (l *Library) HasPlaylist(id string) bool { return l.playlists.Has(id) }

// Playlists returns all playlists in insertion order.
func (l *Library) Playlists() []*models.Playlist { return l.playlists.All() }
