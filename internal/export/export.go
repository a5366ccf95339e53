// Package export renders the entity graph into the catalog's two flat-file
// representations and drives the timestamped backup operation.
//
// Every export carries a metadata block (export timestamp, format version)
// and a computed statistics block in addition to the five entity sections.
// Cross-entity references are flattened: a track or album renders its
// artist's name, a playlist its owner's username. Credentials never leave
// the process.
package export

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/soundvault/soundvault/internal/library"
	"github.com/soundvault/soundvault/internal/models"
	"github.com/soundvault/soundvault/internal/shared"
)

// Version is the format version string stamped into every export.
const Version = "1.0"

// Metadata describes one export invocation.
type Metadata struct {
	ExportDate string `json:"export_date" xml:"export_date"`
	Version    string `json:"version" xml:"version"`
}

// UserRecord is the serialized form of a user. The password never appears.
type UserRecord struct {
	UserID    string `json:"user_id" xml:"user_id"`
	Username  string `json:"username" xml:"username"`
	Email     string `json:"email" xml:"email"`
	Premium   bool   `json:"premium" xml:"premium"`
	CreatedAt string `json:"created_at" xml:"created_at"`
}

// ArtistRecord is the serialized form of an artist.
type ArtistRecord struct {
	ArtistID    string `json:"artist_id" xml:"artist_id"`
	Name        string `json:"name" xml:"name"`
	Bio         string `json:"bio" xml:"bio"`
	AlbumsCount int    `json:"albums_count" xml:"albums_count"`
}

// TrackRecord is the serialized form of a track with its artist reference
// flattened to the artist's name.
type TrackRecord struct {
	TrackID     string `json:"track_id" xml:"track_id"`
	Title       string `json:"title" xml:"title"`
	Duration    int    `json:"duration" xml:"duration"`
	Artist      string `json:"artist" xml:"artist"`
	FilePath    string `json:"file_path" xml:"file_path"`
	StreamCount int    `json:"stream_count" xml:"stream_count"`
	Album       string `json:"album" xml:"album"`
}

// AlbumRecord is the serialized form of an album with its artist reference
// flattened to the artist's name.
type AlbumRecord struct {
	AlbumID     string `json:"album_id" xml:"album_id"`
	Title       string `json:"title" xml:"title"`
	Artist      string `json:"artist" xml:"artist"`
	ReleaseDate string `json:"release_date" xml:"release_date"`
	Genre       string `json:"genre" xml:"genre"`
	TracksCount int    `json:"tracks_count" xml:"tracks_count"`
}

// PlaylistTrackRecord is one playlist entry as an ordered
// (track id, title, artist name, position) tuple.
type PlaylistTrackRecord struct {
	TrackID  string `json:"track_id" xml:"track_id"`
	Title    string `json:"title" xml:"title"`
	Artist   string `json:"artist" xml:"artist"`
	Position int    `json:"position" xml:"position"`
}

// PlaylistRecord is the serialized form of a playlist with its owner
// reference flattened to the owner's username.
type PlaylistRecord struct {
	PlaylistID  string                `json:"playlist_id" xml:"playlist_id"`
	Name        string                `json:"name" xml:"name"`
	Description string                `json:"description" xml:"description"`
	Owner       string                `json:"owner" xml:"owner"`
	IsPublic    bool                  `json:"is_public" xml:"is_public"`
	CreatedDate string                `json:"created_date" xml:"created_date"`
	TracksCount int                   `json:"tracks_count" xml:"tracks_count"`
	Tracks      []PlaylistTrackRecord `json:"tracks" xml:"Tracks>TrackInfo"`
}

// Document is the complete export payload, shared by both formats.
type Document struct {
	XMLName    xml.Name           `json:"-" xml:"MusicCatalog"`
	Metadata   Metadata           `json:"metadata" xml:"Metadata"`
	Statistics library.Statistics `json:"statistics" xml:"Statistics"`
	Users      []UserRecord       `json:"users" xml:"Users>User"`
	Artists    []ArtistRecord     `json:"artists" xml:"Artists>Artist"`
	Tracks     []TrackRecord      `json:"tracks" xml:"Tracks>Track"`
	Albums     []AlbumRecord      `json:"albums" xml:"Albums>Album"`
	Playlists  []PlaylistRecord   `json:"playlists" xml:"Playlists>Playlist"`
}

// Exporter renders a [library.Library] into either flat-file format.
type Exporter struct {
	log    *log.Logger
	pretty bool
	// now is swappable for tests that pin the backup token.
	now func() time.Time
}

// NewExporter creates an Exporter. When pretty is set, JSON output is
// indented and XML output gains element indentation.
func NewExporter(logger *log.Logger, pretty bool) *Exporter {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Exporter{log: logger, pretty: pretty, now: time.Now}
}

// BuildDocument walks lib and produces the flattened export payload.
func (e *Exporter) BuildDocument(lib *library.Library) *Document {
	doc := &Document{
		Metadata: Metadata{
			ExportDate: e.now().Format(time.RFC3339),
			Version:    Version,
		},
		Statistics: lib.Statistics(),
	}

	for _, user := range lib.Users() {
		doc.Users = append(doc.Users, UserRecord{
			UserID:    user.ID,
			Username:  user.Username,
			Email:     user.Email,
			Premium:   user.Premium,
			CreatedAt: user.CreatedAt.Format(time.RFC3339),
		})
	}

	for _, artist := range lib.Artists() {
		doc.Artists = append(doc.Artists, ArtistRecord{
			ArtistID:    artist.ID,
			Name:        artist.Name,
			Bio:         artist.Bio,
			AlbumsCount: len(artist.Albums),
		})
	}

	for _, track := range lib.Tracks() {
		doc.Tracks = append(doc.Tracks, TrackRecord{
			TrackID:     track.ID,
			Title:       track.Title,
			Duration:    track.Duration,
			Artist:      track.Artist.Name,
			FilePath:    track.FilePath,
			StreamCount: track.StreamCount,
			Album:       track.AlbumTitle(),
		})
	}

	for _, album := range lib.Albums() {
		doc.Albums = append(doc.Albums, AlbumRecord{
			AlbumID:     album.ID,
			Title:       album.Title,
			Artist:      album.Artist.Name,
			ReleaseDate: album.ReleaseDate,
			Genre:       album.Genre,
			TracksCount: len(album.Tracks),
		})
	}

	for _, playlist := range lib.Playlists() {
		record := PlaylistRecord{
			PlaylistID:  playlist.ID,
			Name:        playlist.Name,
			Description: playlist.Description,
			Owner:       playlist.Owner.Username,
			IsPublic:    playlist.Public,
			CreatedDate: playlist.CreatedAt.Format(time.RFC3339),
			TracksCount: len(playlist.Entries),
		}
		for _, entry := range playlist.Entries {
			record.Tracks = append(record.Tracks, playlistTrackRecord(entry))
		}
		doc.Playlists = append(doc.Playlists, record)
	}

	return doc
}

func playlistTrackRecord(entry models.PlaylistEntry) PlaylistTrackRecord {
	return PlaylistTrackRecord{
		TrackID:  entry.Track.ID,
		Title:    entry.Track.Title,
		Artist:   entry.Track.Artist.Name,
		Position: entry.Position,
	}
}

// WriteJSON renders lib as a structured document at path, creating any
// missing destination directory.
func (e *Exporter) WriteJSON(lib *library.Library, path string) error {
	data, err := shared.MarshalJSON(e.BuildDocument(lib), e.pretty)
	if err != nil {
		return fmt.Errorf("failed to marshal export: %w", err)
	}
	return e.writeFile(path, data)
}

// WriteXML renders lib as a markup tree at path, creating any missing
// destination directory.
func (e *Exporter) WriteXML(lib *library.Library, path string) error {
	var data []byte
	var err error

	doc := e.BuildDocument(lib)
	if e.pretty {
		data, err = xml.MarshalIndent(doc, "", "  ")
	} else {
		data, err = xml.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal export: %w", err)
	}

	return e.writeFile(path, append([]byte(xml.Header), data...))
}

func (e *Exporter) writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	e.log.Info("exported catalog", "path", path, "bytes", len(data))
	return nil
}
