package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/soundvault/soundvault/internal/shared"
	th "github.com/soundvault/soundvault/internal/testing"
)

func quietLogger() *log.Logger {
	logger := shared.NewLogger(nil)
	logger.SetLevel(log.FatalLevel)
	return logger
}

func TestBuildDocument(t *testing.T) {
	lib := th.SeedLibrary()
	doc := NewExporter(quietLogger(), true).BuildDocument(lib)

	t.Run("Metadata", func(t *testing.T) {
		if doc.Metadata.Version != "1.0" {
			t.Errorf("expected version 1.0, got %s", doc.Metadata.Version)
		}
		if doc.Metadata.ExportDate == "" {
			t.Error("expected an export date")
		}
	})

	t.Run("FlattenedReferences", func(t *testing.T) {
		if len(doc.Tracks) != 2 {
			t.Fatalf("expected 2 tracks, got %d", len(doc.Tracks))
		}
		if doc.Tracks[0].Artist != "Queen" {
			t.Errorf("track artist should flatten to name, got %s", doc.Tracks[0].Artist)
		}
		if doc.Tracks[0].Album != "A Night at the Opera" {
			t.Errorf("track album should flatten to title, got %s", doc.Tracks[0].Album)
		}

		if len(doc.Playlists) != 1 {
			t.Fatalf("expected 1 playlist, got %d", len(doc.Playlists))
		}
		playlist := doc.Playlists[0]
		if playlist.Owner != "ada" {
			t.Errorf("playlist owner should flatten to username, got %s", playlist.Owner)
		}
		if len(playlist.Tracks) != 2 || playlist.Tracks[1].Position != 2 {
			t.Errorf("unexpected playlist entries %v", playlist.Tracks)
		}
	})

	t.Run("Statistics", func(t *testing.T) {
		if doc.Statistics.Tracks != 2 || doc.Statistics.Playlists != 1 {
			t.Errorf("unexpected statistics %+v", doc.Statistics)
		}
	})

	t.Run("NoCredentials", func(t *testing.T) {
		data, err := json.Marshal(doc)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		if strings.Contains(string(data), "password") || strings.Contains(string(data), "pw") {
			t.Error("export must never contain credentials")
		}
	})
}

func TestWriteExports(t *testing.T) {
	t.Run("JSONCreatesMissingDirectory", func(t *testing.T) {
		lib := th.SeedLibrary()
		path := t.TempDir() + "/nested/deep/catalog.json"

		if err := NewExporter(quietLogger(), true).WriteJSON(lib, path); err != nil {
			t.Fatalf("export failed: %v", err)
		}
		th.AssertFileExists(t, path)

		content := th.MustReadFile(t, path)
		if !strings.Contains(content, `"total_streams"`) {
			t.Error("JSON export missing statistics block")
		}
		if !strings.Contains(content, `"export_date"`) {
			t.Error("JSON export missing metadata block")
		}
	})

	t.Run("XMLShape", func(t *testing.T) {
		lib := th.SeedLibrary()
		path := t.TempDir() + "/catalog.xml"

		if err := NewExporter(quietLogger(), true).WriteXML(lib, path); err != nil {
			t.Fatalf("export failed: %v", err)
		}

		content := th.MustReadFile(t, path)
		for _, want := range []string{
			"<?xml",
			"<MusicCatalog>",
			"<Users>",
			"<User>",
			"<Playlists>",
			"<TrackInfo>",
			"<premium>true</premium>",
		} {
			if !strings.Contains(content, want) {
				t.Errorf("XML export missing %s", want)
			}
		}
	})
}

func TestStreamCountSurvivesExport(t *testing.T) {
	seeded := th.SeedLibrary()
	track, _ := seeded.Track("t1")
	track.Play()
	track.Play()
	track.Play()

	doc := NewExporter(quietLogger(), false).BuildDocument(seeded)
	if doc.Statistics.TotalStreams != 3 {
		t.Errorf("expected total_streams 3, got %d", doc.Statistics.TotalStreams)
	}

	for _, rec := range doc.Tracks {
		if rec.TrackID == "t1" && rec.StreamCount != 3 {
			t.Errorf("expected stream_count 3 on t1, got %d", rec.StreamCount)
		}
	}
}
