// package models defines the data model for the soundvault music catalog
package models

import (
	"fmt"
	"time"

	"github.com/soundvault/soundvault/internal/shared"
)

// User represents a listener account.
//
// The password is kept unexported and never serialized; bulk-loaded users
// receive a placeholder credential.
type User struct {
	ID        string
	Username  string
	Email     string
	Premium   bool
	CreatedAt time.Time

	password string
}

// NewUser creates a User with the given identity and credential.
func NewUser(id, username, email, password string, premium bool) *User {
	return &User{
		ID:        id,
		Username:  username,
		Email:     email,
		Premium:   premium,
		CreatedAt: time.Now(),
		password:  password,
	}
}

// CheckPassword reports whether the given email and password match this account.
func (u *User) CheckPassword(email, password string) bool {
	return email == u.Email && password == u.password
}

// UpgradeToPremium flips the premium flag. Upgrading twice is a no-op.
func (u *User) UpgradeToPremium() {
	u.Premium = true
}

// Validate checks that the user carries its required fields.
func (u *User) Validate() error {
	if u.ID == "" || u.Username == "" || u.Email == "" {
		return fmt.Errorf("%w: user requires id, username and email", shared.ErrInvalidInput)
	}
	return nil
}

// Artist represents a performer in the catalog.
type Artist struct {
	ID     string
	Name   string
	Bio    string
	Albums []*Album
}

// NewArtist creates an Artist. Bio may be empty.
func NewArtist(id, name, bio string) *Artist {
	return &Artist{ID: id, Name: name, Bio: bio}
}

// AddAlbum appends an album to the artist's album list exactly once.
func (a *Artist) AddAlbum(album *Album) {
	for _, existing := range a.Albums {
		if existing == album {
			return
		}
	}
	a.Albums = append(a.Albums, album)
}

// Validate checks that the artist carries its required fields.
func (a *Artist) Validate() error {
	if a.ID == "" || a.Name == "" {
		return fmt.Errorf("%w: artist requires id and name", shared.ErrInvalidInput)
	}
	return nil
}

// Track represents a single song owned by an artist.
type Track struct {
	ID          string
	Title       string
	Duration    int // whole seconds
	FilePath    string
	Artist      *Artist
	Album       *Album
	StreamCount int
}

// NewTrack creates a Track owned by artist. FilePath may be empty.
func NewTrack(id, title string, duration int, filePath string, artist *Artist) *Track {
	return &Track{
		ID:       id,
		Title:    title,
		Duration: duration,
		FilePath: filePath,
		Artist:   artist,
	}
}

// Play increments the stream counter.
func (t *Track) Play() {
	t.StreamCount++
}

// Download returns the track's file path for premium users.
func (t *Track) Download(u *User) (string, error) {
	if u == nil || !u.Premium {
		return "", fmt.Errorf("%w: downloading %q", shared.ErrPremiumRequired, t.Title)
	}
	return t.FilePath, nil
}

// AlbumTitle returns the owning album's title, or an empty string when the
// track is not placed on an album.
func (t *Track) AlbumTitle() string {
	if t.Album == nil {
		return ""
	}
	return t.Album.Title
}

// Validate checks that the track carries its required fields and a resolved artist.
func (t *Track) Validate() error {
	if t.ID == "" || t.Title == "" {
		return fmt.Errorf("%w: track requires id and title", shared.ErrInvalidInput)
	}
	if t.Duration < 0 {
		return fmt.Errorf("%w: track duration must be non-negative", shared.ErrInvalidInput)
	}
	if t.Artist == nil {
		return fmt.Errorf("%w: track requires an artist", shared.ErrInvalidInput)
	}
	return nil
}

// Album represents an ordered track collection owned by an artist.
type Album struct {
	ID          string
	Title       string
	Artist      *Artist
	ReleaseDate string // opaque, not validated
	Genre       string
	Tracks      []*Track
}

// NewAlbum creates an Album and registers it with its artist's album list.
func NewAlbum(id, title string, artist *Artist, releaseDate, genre string) *Album {
	album := &Album{
		ID:          id,
		Title:       title,
		Artist:      artist,
		ReleaseDate: releaseDate,
		Genre:       genre,
	}
	if artist != nil {
		artist.AddAlbum(album)
	}
	return album
}

// AddTrack appends a track to the album exactly once and sets the track's
// album back-reference.
func (a *Album) AddTrack(track *Track) {
	for _, existing := range a.Tracks {
		if existing == track {
			return
		}
	}
	a.Tracks = append(a.Tracks, track)
	track.Album = a
}

// Validate checks that the album carries its required fields and a resolved artist.
func (a *Album) Validate() error {
	if a.ID == "" || a.Title == "" {
		return fmt.Errorf("%w: album requires id and title", shared.ErrInvalidInput)
	}
	if a.Artist == nil {
		return fmt.Errorf("%w: album requires an artist", shared.ErrInvalidInput)
	}
	return nil
}

// PlaylistEntry is a (track, position) pair. Positions are 1-based and
// contiguous for the entries present at any time.
type PlaylistEntry struct {
	Track    *Track
	Position int
}

// Playlist represents a user-owned, ordered track sequence.
type Playlist struct {
	ID          string
	Name        string
	Description string
	Owner       *User
	Public      bool
	CreatedAt   time.Time
	Entries     []PlaylistEntry
}

// NewPlaylist creates a Playlist owned by owner. Description may be empty.
func NewPlaylist(id, name, description string, owner *User, public bool) *Playlist {
	return &Playlist{
		ID:          id,
		Name:        name,
		Description: description,
		Owner:       owner,
		Public:      public,
		CreatedAt:   time.Now(),
	}
}

// AddTrack appends a track at the next position.
func (p *Playlist) AddTrack(track *Track) {
	p.Entries = append(p.Entries, PlaylistEntry{Track: track, Position: len(p.Entries) + 1})
}

// RemoveTrack removes the first entry holding trackID and renumbers all
// subsequent entries so positions stay contiguous from 1.
func (p *Playlist) RemoveTrack(trackID string) error {
	for i, entry := range p.Entries {
		if entry.Track.ID == trackID {
			p.Entries = append(p.Entries[:i], p.Entries[i+1:]...)
			for j := i; j < len(p.Entries); j++ {
				p.Entries[j].Position = j + 1
			}
			return nil
		}
	}
	return fmt.Errorf("%w: %s not in playlist %s", shared.ErrTrackNotFound, trackID, p.Name)
}

// Validate checks that the playlist carries its required fields and a resolved owner.
func (p *Playlist) Validate() error {
	if p.ID == "" || p.Name == "" {
		return fmt.Errorf("%w: playlist requires id and name", shared.ErrInvalidInput)
	}
	if p.Owner == nil {
		return fmt.Errorf("%w: playlist requires an owner", shared.ErrInvalidInput)
	}
	return nil
}
