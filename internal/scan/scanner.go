// package scan walks a music directory and feeds ID3-tagged .mp3 files into
// the catalog.
//
// Files without a parsable tag (or without a title frame) count as skipped
// and never abort the walk. Tracks already present in the catalog, matched by
// normalized title+artist, are skipped too so rescans stay idempotent.
package scan

import (
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bogem/id3v2"
	"github.com/charmbracelet/log"
	"github.com/soundvault/soundvault/internal/library"
	"github.com/soundvault/soundvault/internal/models"
	"github.com/soundvault/soundvault/internal/shared"
)

const unknownArtist = "Unknown Artist"

// Result summarizes a completed scan.
type Result struct {
	Loaded  int
	Skipped int
}

// Scanner imports tracks from tagged audio files on disk.
type Scanner struct {
	lib *library.Library
	log *log.Logger
}

// NewScanner creates a Scanner over lib.
func NewScanner(lib *library.Library, logger *log.Logger) *Scanner {
	return &Scanner{lib: lib, log: logger}
}

// Scan walks dir for .mp3 files and inserts each new track into the catalog.
func (s *Scanner) Scan(dir string) (Result, error) {
	var res Result

	seen := make(map[string]bool)
	for _, track := range s.lib.Tracks() {
		seen[shared.NormalizeTrackKey(track.Title, track.Artist.Name)] = true
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".mp3") {
			return nil
		}

		frames, ok := s.readFrames(path)
		if !ok {
			res.Skipped++
			return nil
		}

		key := shared.NormalizeTrackKey(frames.title, frames.artist)
		if seen[key] {
			s.log.Debug("already in catalog, skipping", "path", path)
			res.Skipped++
			return nil
		}
		seen[key] = true

		s.insertTrack(frames)
		res.Loaded++
		return nil
	})
	if err != nil {
		return res, err
	}

	s.log.Info("scan complete", "dir", dir, "loaded", res.Loaded, "skipped", res.Skipped)
	return res, nil
}

// tagFrames holds the ID3 fields a track is built from. Reading them never
// touches the catalog, so skipped files leave no trace.
type tagFrames struct {
	title    string
	artist   string
	album    string
	duration int
	path     string
}

// readFrames parses the file's ID3 frames. The second return is false when
// the file yields no usable title.
func (s *Scanner) readFrames(path string) (tagFrames, bool) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		s.log.Warn("unreadable tag, skipping", "path", path, "err", err)
		return tagFrames{}, false
	}
	defer tag.Close()

	title := strings.TrimSpace(tag.Title())
	if title == "" {
		s.log.Warn("no title frame, skipping", "path", path)
		return tagFrames{}, false
	}

	artistName := strings.TrimSpace(tag.Artist())
	if artistName == "" {
		artistName = unknownArtist
	}

	return tagFrames{
		title:    title,
		artist:   artistName,
		album:    strings.TrimSpace(tag.Album()),
		duration: durationSeconds(tag),
		path:     path,
	}, true
}

// insertTrack materializes the frames into the catalog, creating the artist
// and album as needed.
func (s *Scanner) insertTrack(frames tagFrames) {
	artist := s.findOrCreateArtist(frames.artist)
	track := models.NewTrack(shared.GenerateID(), frames.title, frames.duration, frames.path, artist)

	if frames.album != "" {
		s.findOrCreateAlbum(frames.album, artist).AddTrack(track)
	}

	s.lib.PutTrack(track)
}

func (s *Scanner) findOrCreateArtist(name string) *models.Artist {
	artist, ok := s.lib.FindArtist(func(a *models.Artist) bool { return a.Name == name })
	if !ok {
		artist = models.NewArtist(shared.GenerateID(), name, "")
		s.lib.PutArtist(artist)
	}
	return artist
}

func (s *Scanner) findOrCreateAlbum(title string, artist *models.Artist) *models.Album {
	album, ok := s.lib.FindAlbum(func(a *models.Album) bool {
		return a.Title == title && a.Artist == artist
	})
	if !ok {
		album = models.NewAlbum(shared.GenerateID(), title, artist, "", "")
		s.lib.PutAlbum(album)
	}
	return album
}

// durationSeconds reads the TLEN frame, which carries milliseconds.
func durationSeconds(tag *id3v2.Tag) int {
	text := strings.TrimSpace(tag.GetTextFrame(tag.CommonID("Length")).Text)
	if text == "" {
		return 0
	}
	ms, err := strconv.Atoi(text)
	if err != nil || ms < 0 {
		return 0
	}
	return ms / 1000
}
