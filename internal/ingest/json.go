package ingest

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/soundvault/soundvault/internal/library"
	"github.com/soundvault/soundvault/internal/models"
	"github.com/soundvault/soundvault/internal/shared"
)

// jsonDocument is the top-level structured-document payload. Every section
// is optional; an absent section yields zero records. Records stay raw so a
// malformed record fails individually instead of aborting the document.
type jsonDocument struct {
	Users     []json.RawMessage `json:"users"`
	Artists   []json.RawMessage `json:"artists"`
	Tracks    []json.RawMessage `json:"tracks"`
	Albums    []json.RawMessage `json:"albums"`
	Playlists []json.RawMessage `json:"playlists"`
}

// Required fields are pointers so an absent key is distinguishable from an
// empty value; optional fields carry their documented defaults as zero values.
type jsonUser struct {
	UserID   *string `json:"user_id"`
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Premium  bool    `json:"premium"`
}

type jsonArtist struct {
	ArtistID *string `json:"artist_id"`
	Name     *string `json:"name"`
	Bio      string  `json:"bio"`
}

type jsonTrack struct {
	TrackID     *string `json:"track_id"`
	Title       *string `json:"title"`
	Duration    *int    `json:"duration"`
	Artist      *string `json:"artist"`
	FilePath    string  `json:"file_path"`
	StreamCount int     `json:"stream_count"`
}

type jsonAlbum struct {
	AlbumID     *string `json:"album_id"`
	Title       *string `json:"title"`
	Artist      *string `json:"artist"`
	ReleaseDate *string `json:"release_date"`
	Genre       string  `json:"genre"`
}

type jsonPlaylistTrack struct {
	TrackID string `json:"track_id"`
}

type jsonPlaylist struct {
	PlaylistID  *string             `json:"playlist_id"`
	Name        *string             `json:"name"`
	Description string              `json:"description"`
	Owner       *string             `json:"owner"`
	IsPublic    *bool               `json:"is_public"`
	Tracks      []jsonPlaylistTrack `json:"tracks"`
}

// JSONParser loads the structured-document format.
//
// Duplicate policy: always insert, so a later record with an already-loaded
// id overwrites the earlier entity (last-loaded wins).
type JSONParser struct {
	log *log.Logger
}

// NewJSONParser creates a JSONParser logging record-level skips to logger.
func NewJSONParser(logger *log.Logger) *JSONParser {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &JSONParser{log: logger}
}

// Parse loads data into lib, running the five stages in dependency order.
// A malformed document is fatal; a malformed record is counted and skipped.
func (p *JSONParser) Parse(lib *library.Library, data []byte) (Result, error) {
	var doc jsonDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return Result{}, fmt.Errorf("%w: decoding JSON: %v", shared.ErrInvalidFormat, err)
	}

	res := NewResolver(lib)

	var out Result
	out.merge(p.loadUsers(lib, doc.Users))
	out.merge(p.loadArtists(lib, doc.Artists))
	out.merge(p.loadTracks(lib, res, doc.Tracks))
	out.merge(p.loadAlbums(lib, res, doc.Albums))
	out.merge(p.loadPlaylists(lib, res, doc.Playlists))
	return out, nil
}

func (p *JSONParser) loadUsers(lib *library.Library, records []json.RawMessage) Result {
	var out Result
	for _, raw := range records {
		var rec jsonUser
		if err := json.Unmarshal(raw, &rec); err != nil {
			p.log.Warn("skipping malformed user record", "source", "json", "err", err)
			out.Errors++
			continue
		}
		if rec.UserID == nil || rec.Username == nil || rec.Email == nil {
			p.log.Warn("skipping user record with missing required fields", "source", "json")
			out.Errors++
			continue
		}

		lib.PutUser(models.NewUser(*rec.UserID, *rec.Username, *rec.Email, loadedPassword, rec.Premium))
		out.Loaded++
	}
	return out
}

func (p *JSONParser) loadArtists(lib *library.Library, records []json.RawMessage) Result {
	var out Result
	for _, raw := range records {
		var rec jsonArtist
		if err := json.Unmarshal(raw, &rec); err != nil {
			p.log.Warn("skipping malformed artist record", "source", "json", "err", err)
			out.Errors++
			continue
		}
		if rec.ArtistID == nil || rec.Name == nil {
			p.log.Warn("skipping artist record with missing required fields", "source", "json")
			out.Errors++
			continue
		}

		lib.PutArtist(models.NewArtist(*rec.ArtistID, *rec.Name, rec.Bio))
		out.Loaded++
	}
	return out
}

func (p *JSONParser) loadTracks(lib *library.Library, res Resolver, records []json.RawMessage) Result {
	var out Result
	for _, raw := range records {
		var rec jsonTrack
		if err := json.Unmarshal(raw, &rec); err != nil {
			p.log.Warn("skipping malformed track record", "source", "json", "err", err)
			out.Errors++
			continue
		}
		if rec.TrackID == nil || rec.Title == nil || rec.Duration == nil || rec.Artist == nil {
			p.log.Warn("skipping track record with missing required fields", "source", "json")
			out.Errors++
			continue
		}

		artist, ok := res.ArtistByName(*rec.Artist)
		if !ok {
			p.log.Warn("artist not found for track", "source", "json", "artist", *rec.Artist, "title", *rec.Title)
			out.Errors++
			continue
		}

		track := models.NewTrack(*rec.TrackID, *rec.Title, *rec.Duration, rec.FilePath, artist)
		track.StreamCount = rec.StreamCount
		lib.PutTrack(track)
		out.Loaded++
	}
	return out
}

func (p *JSONParser) loadAlbums(lib *library.Library, res Resolver, records []json.RawMessage) Result {
	var out Result
	for _, raw := range records {
		var rec jsonAlbum
		if err := json.Unmarshal(raw, &rec); err != nil {
			p.log.Warn("skipping malformed album record", "source", "json", "err", err)
			out.Errors++
			continue
		}
		if rec.AlbumID == nil || rec.Title == nil || rec.Artist == nil || rec.ReleaseDate == nil {
			p.log.Warn("skipping album record with missing required fields", "source", "json")
			out.Errors++
			continue
		}

		artist, ok := res.ArtistByName(*rec.Artist)
		if !ok {
			p.log.Warn("artist not found for album", "source", "json", "artist", *rec.Artist, "title", *rec.Title)
			out.Errors++
			continue
		}

		lib.PutAlbum(models.NewAlbum(*rec.AlbumID, *rec.Title, artist, *rec.ReleaseDate, rec.Genre))
		out.Loaded++
	}
	return out
}

func (p *JSONParser) loadPlaylists(lib *library.Library, res Resolver, records []json.RawMessage) Result {
	var out Result
	for _, raw := range records {
		var rec jsonPlaylist
		if err := json.Unmarshal(raw, &rec); err != nil {
			p.log.Warn("skipping malformed playlist record", "source", "json", "err", err)
			out.Errors++
			continue
		}
		if rec.PlaylistID == nil || rec.Name == nil || rec.Owner == nil {
			p.log.Warn("skipping playlist record with missing required fields", "source", "json")
			out.Errors++
			continue
		}

		owner, ok := res.UserByUsername(*rec.Owner)
		if !ok {
			p.log.Warn("owner not found for playlist", "source", "json", "owner", *rec.Owner, "name", *rec.Name)
			out.Errors++
			continue
		}

		public := true
		if rec.IsPublic != nil {
			public = *rec.IsPublic
		}

		playlist := models.NewPlaylist(*rec.PlaylistID, *rec.Name, rec.Description, owner, public)
		ids := make([]string, 0, len(rec.Tracks))
		for _, ref := range rec.Tracks {
			ids = append(ids, ref.TrackID)
		}
		attachPlaylistTracks(res, playlist, ids, p.log)

		lib.PutPlaylist(playlist)
		out.Loaded++
	}
	return out
}

// attachPlaylistTracks attaches track references by id. An unresolved id is
// dropped silently: the playlist is still created and no error is counted.
func attachPlaylistTracks(res Resolver, playlist *models.Playlist, trackIDs []string, logger *log.Logger) {
	for _, id := range trackIDs {
		track, ok := res.TrackByID(id)
		if !ok {
			logger.Debug("dropping unresolved playlist track", "playlist", playlist.Name, "track_id", id)
			continue
		}
		playlist.AddTrack(track)
	}
}
