package library

import (
	"fmt"
	"strings"

	"github.com/soundvault/soundvault/internal/models"
	"github.com/soundvault/soundvault/internal/shared"
)

// Session identifies an authenticated user for the operations that need one.
//
// Sessions are plain values handed back by [Service.Login]; there is no
// implicit current-user state on the service.
type Session struct {
	User *models.User
}

// Service exposes the catalog operations over a [Library].
type Service struct {
	lib *Library
}

// NewService wraps lib with the catalog operations.
func NewService(lib *Library) *Service {
	return &Service{lib: lib}
}

// Library returns the underlying entity graph.
func (s *Service) Library() *Library {
	return s.lib
}

// RegisterUser creates a user with a generated id.
//
// Email uniqueness is enforced here and only here; bulk loading goes through
// the library directly and may introduce duplicates silently.
func (s *Service) RegisterUser(username, email, password string) (*models.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: username, email and password are required", shared.ErrInvalidInput)
	}

	if _, ok := s.lib.FindUser(func(u *models.User) bool { return u.Email == email }); ok {
		return nil, fmt.Errorf("%w: %s", shared.ErrEmailTaken, email)
	}

	user := models.NewUser(shared.GenerateID(), username, email, password, false)
	s.lib.PutUser(user)
	return user, nil
}

// Login authenticates by email and password, returning a session for the
// matching user.
func (s *Service) Login(email, password string) (*Session, error) {
	user, ok := s.lib.FindUser(func(u *models.User) bool { return u.CheckPassword(email, password) })
	if !ok {
		return nil, shared.ErrAuthFailed
	}
	return &Session{User: user}, nil
}

// AddTrack creates a track for the named artist, creating the artist when no
// exact name match exists yet. Requires a session.
func (s *Service) AddTrack(sess *Session, title string, duration int, filePath, artistName string) (*models.Track, error) {
	if sess == nil || sess.User == nil {
		return nil, shared.ErrLoginRequired
	}
	if title == "" || artistName == "" {
		return nil, fmt.Errorf("%w: title and artist are required", shared.ErrInvalidInput)
	}
	if duration < 0 {
		return nil, fmt.Errorf("%w: duration must be non-negative", shared.ErrInvalidInput)
	}

	artist, ok := s.lib.FindArtist(func(a *models.Artist) bool { return a.Name == artistName })
	if !ok {
		artist = models.NewArtist(shared.GenerateID(), artistName, "")
		s.lib.PutArtist(artist)
	}

	track := models.NewTrack(shared.GenerateID(), title, duration, filePath, artist)
	s.lib.PutTrack(track)
	return track, nil
}

// CreatePlaylist creates a playlist owned by the session user.
func (s *Service) CreatePlaylist(sess *Session, name, description string, public bool) (*models.Playlist, error) {
	if sess == nil || sess.User == nil {
		return nil, shared.ErrLoginRequired
	}
	if name == "" {
		return nil, fmt.Errorf("%w: playlist name is required", shared.ErrInvalidInput)
	}

	playlist := models.NewPlaylist(shared.GenerateID(), name, description, sess.User, public)
	s.lib.PutPlaylist(playlist)
	return playlist, nil
}

// UserPlaylists returns the playlists owned by the given user id.
func (s *Service) UserPlaylists(userID string) []*models.Playlist {
	var owned []*models.Playlist
	for _, playlist := range s.lib.Playlists() {
		if playlist.Owner != nil && playlist.Owner.ID == userID {
			owned = append(owned, playlist)
		}
	}
	return owned
}

// SearchTracks returns all tracks whose title or artist name contains query,
// case-insensitively.
func (s *Service) SearchTracks(query string) []*models.Track {
	var results []*models.Track
	q := strings.ToLower(query)

	for _, track := range s.lib.Tracks() {
		if strings.Contains(strings.ToLower(track.Title), q) ||
			strings.Contains(strings.ToLower(track.Artist.Name), q) {
			results = append(results, track)
		}
	}
	return results
}

// Statistics returns the aggregate counts for the catalog.
func (s *Service) Statistics() Statistics {
	return s.lib.Statistics()
}
