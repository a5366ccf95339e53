package ingest

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/soundvault/soundvault/internal/library"
	"github.com/soundvault/soundvault/internal/models"
	"github.com/soundvault/soundvault/internal/shared"
)

// xmlDocument is the markup-tree payload: a root element with optional
// container elements holding repeated record elements. Record fields are
// child elements with text content, so every field decodes as a string and
// gets coerced per record.
type xmlDocument struct {
	Users     []xmlUser     `xml:"Users>User"`
	Artists   []xmlArtist   `xml:"Artists>Artist"`
	Tracks    []xmlTrack    `xml:"Tracks>Track"`
	Albums    []xmlAlbum    `xml:"Albums>Album"`
	Playlists []xmlPlaylist `xml:"Playlists>Playlist"`
}

type xmlUser struct {
	UserID   string `xml:"user_id"`
	Username string `xml:"username"`
	Email    string `xml:"email"`
	Premium  string `xml:"premium"`
}

type xmlArtist struct {
	ArtistID string `xml:"artist_id"`
	Name     string `xml:"name"`
	Bio      string `xml:"bio"`
}

type xmlTrack struct {
	TrackID     string `xml:"track_id"`
	Title       string `xml:"title"`
	Duration    string `xml:"duration"`
	Artist      string `xml:"artist"`
	FilePath    string `xml:"file_path"`
	StreamCount string `xml:"stream_count"`
}

type xmlAlbum struct {
	AlbumID     string `xml:"album_id"`
	Title       string `xml:"title"`
	Artist      string `xml:"artist"`
	ReleaseDate string `xml:"release_date"`
	Genre       string `xml:"genre"`
}

type xmlPlaylistTrack struct {
	TrackID string `xml:"track_id"`
}

type xmlPlaylist struct {
	PlaylistID  string             `xml:"playlist_id"`
	Name        string             `xml:"name"`
	Description string             `xml:"description"`
	Owner       string             `xml:"owner"`
	IsPublic    string             `xml:"is_public"`
	Tracks      []xmlPlaylistTrack `xml:"Tracks>TrackInfo"`
}

// XMLParser loads the markup-tree format.
//
// Duplicate policy: an id already present in the graph is skipped silently,
// counted neither as loaded nor as an error. Loaded after the JSON source,
// this means the XML source can add new ids but never override existing ones.
type XMLParser struct {
	log *log.Logger
}

// NewXMLParser creates an XMLParser logging record-level skips to logger.
func NewXMLParser(logger *log.Logger) *XMLParser {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &XMLParser{log: logger}
}

// Parse loads data into lib, running the five stages in dependency order.
// A malformed document is fatal; a malformed record is counted and skipped.
func (p *XMLParser) Parse(lib *library.Library, data []byte) (Result, error) {
	var doc xmlDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return Result{}, fmt.Errorf("%w: decoding XML: %v", shared.ErrInvalidFormat, err)
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

// parseBool reads the boolean text encoding: "true" (case-insensitive) is
// true, anything else is false.
func parseBool(text string) bool {
	return strings.EqualFold(text, "true")
}

func (p *XMLParser) loadUsers(lib *library.Library, records []xmlUser) Result {
	var out Result
	for _, rec := range records {
		if rec.UserID == "" || rec.Username == "" || rec.Email == "" {
			p.log.Warn("skipping user record with missing required fields", "source", "xml")
			out.Errors++
			continue
		}

		user := models.NewUser(rec.UserID, rec.Username, rec.Email, loadedPassword, parseBool(rec.Premium))
		if lib.PutUserIfAbsent(user) {
			out.Loaded++
		}
	}
	return out
}

func (p *XMLParser) loadArtists(lib *library.Library, records []xmlArtist) Result {
	var out Result
	for _, rec := range records {
		if rec.ArtistID == "" || rec.Name == "" {
			p.log.Warn("skipping artist record with missing required fields", "source", "xml")
			out.Errors++
			continue
		}

		if lib.PutArtistIfAbsent(models.NewArtist(rec.ArtistID, rec.Name, rec.Bio)) {
			out.Loaded++
		}
	}
	return out
}

func (p *XMLParser) loadTracks(lib *library.Library, res Resolver, records []xmlTrack) Result {
	var out Result
	for _, rec := range records {
		if rec.TrackID == "" || rec.Title == "" || rec.Duration == "" || rec.Artist == "" {
			p.log.Warn("skipping track record with missing required fields", "source", "xml")
			out.Errors++
			continue
		}

		duration, err := strconv.Atoi(rec.Duration)
		if err != nil {
			p.log.Warn("skipping track record with malformed duration", "source", "xml", "title", rec.Title, "duration", rec.Duration)
			out.Errors++
			continue
		}

		artist, ok := res.ArtistByName(rec.Artist)
		if !ok {
			p.log.Warn("artist not found for track", "source", "xml", "artist", rec.Artist, "title", rec.Title)
			out.Errors++
			continue
		}

		track := models.NewTrack(rec.TrackID, rec.Title, duration, rec.FilePath, artist)
		// Optional counter; malformed text falls back to zero.
		if streams, err := strconv.Atoi(rec.StreamCount); err == nil {
			track.StreamCount = streams
		}
		if lib.PutTrackIfAbsent(track) {
			out.Loaded++
		}
	}
	return out
}

func (p *XMLParser) loadAlbums(lib *library.Library, res Resolver, records []xmlAlbum) Result {
	var out Result
	for _, rec := range records {
		if rec.AlbumID == "" || rec.Title == "" || rec.Artist == "" || rec.ReleaseDate == "" {
			p.log.Warn("skipping album record with missing required fields", "source", "xml")
			out.Errors++
			continue
		}

		artist, ok := res.ArtistByName(rec.Artist)
		if !ok {
			p.log.Warn("artist not found for album", "source", "xml", "artist", rec.Artist, "title", rec.Title)
			out.Errors++
			continue
		}

		// Construct only after the duplicate check: NewAlbum registers the
		// album with its artist, which a skipped record must not do.
		if lib.HasAlbum(rec.AlbumID) {
			continue
		}
		lib.PutAlbum(models.NewAlbum(rec.AlbumID, rec.Title, artist, rec.ReleaseDate, rec.Genre))
		out.Loaded++
	}
	return out
}

func (p *XMLParser) loadPlaylists(lib *library.Library, res Resolver, records []xmlPlaylist) Result {
	var out Result
	for _, rec := range records {
		if rec.PlaylistID == "" || rec.Name == "" || rec.Owner == "" {
			p.log.Warn("skipping playlist record with missing required fields", "source", "xml")
			out.Errors++
			continue
		}

		owner, ok := res.UserByUsername(rec.Owner)
		if !ok {
			p.log.Warn("owner not found for playlist", "source", "xml", "owner", rec.Owner, "name", rec.Name)
			out.Errors++
			continue
		}

		if lib.HasPlaylist(rec.PlaylistID) {
			continue
		}

		public := true
		if rec.IsPublic != "" {
			public = parseBool(rec.IsPublic)
		}

		playlist := models.NewPlaylist(rec.PlaylistID, rec.Name, rec.Description, owner, public)
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
