package ingest

import (
	"github.com/soundvault/soundvault/internal/library"
	"github.com/soundvault/soundvault/internal/models"
)

// Resolver converts names and ids found in records into live entity handles.
//
// Resolution never mutates the graph and never errors: absence is a normal
// outcome reported through the boolean, which the parser turns into a
// per-record error.
type Resolver struct {
	lib *library.Library
}

// NewResolver creates a Resolver over lib.
func NewResolver(lib *library.Library) Resolver {
	return Resolver{lib: lib}
}

// ArtistByName resolves an artist reference by exact, case-sensitive name.
// With duplicate names the first-inserted artist wins.
func (r Resolver) ArtistByName(name string) (*models.Artist, bool) {
	return r.lib.FindArtist(func(a *models.Artist) bool { return a.Name == name })
}

// UserByUsername resolves an owner reference by exact, case-sensitive
// username. With duplicate usernames the first-inserted user wins.
func (r Resolver) UserByUsername(username string) (*models.User, bool) {
	return r.lib.FindUser(func(u *models.User) bool { return u.Username == username })
}

// TrackByID resolves a track reference by exact identifier.
func (r Resolver) TrackByID(id string) (*models.Track, bool) {
	return r.lib.Track(id)
}
