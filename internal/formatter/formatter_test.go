package formatter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	helpers "github.com/soundvault/soundvault/internal/testing"
)

func TestExporters(t *testing.T) {
	lib := helpers.SeedLibrary()
	playlist, ok := lib.Playlist("p1")
	if !ok {
		t.Fatal("seed library is missing playlist p1")
	}

	t.Run("CSVIncludesHeaderAndRows", func(t *testing.T) {
		data, err := ExportToCSV(playlist)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		text := string(data)
		if !strings.Contains(text, "Position,ID,Title,Artist,Duration") {
			t.Errorf("expected CSV header, got %q", text)
		}
		if !strings.Contains(text, "1,t1,Bohemian Rhapsody,Queen,354") {
			t.Errorf("expected first track row, got %q", text)
		}
		if !strings.Contains(text, "2,t2,Let It Be,The Beatles") {
			t.Errorf("expected second track row, got %q", text)
		}
	})

	t.Run("MarkdownIncludesMetadata", func(t *testing.T) {
		data, err := ExportToMarkdown(playlist)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		text := string(data)
		for _, want := range []string{
			"# Classics",
			"**Owner**: ada",
			"**Tracks**: 2",
			"**Visibility**: Public",
			"1. Queen - Bohemian Rhapsody",
			"[5:54]",
		} {
			if !strings.Contains(text, want) {
				t.Errorf("expected markdown to contain %q, got %q", want, text)
			}
		}
	})

	t.Run("TextListsNumberedTracks", func(t *testing.T) {
		data, err := ExportToText(playlist)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		text := string(data)
		if !strings.Contains(text, "Playlist: Classics") {
			t.Errorf("expected playlist name, got %q", text)
		}
		if !strings.Contains(text, "2. The Beatles - Let It Be") {
			t.Errorf("expected numbered track line, got %q", text)
		}
	})
}

func TestWriteExport(t *testing.T) {
	lib := helpers.SeedLibrary()
	playlist, _ := lib.Playlist("p1")

	t.Run("WritesFileAndCreatesDirectory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out", "classics.csv")

		if err := WriteExport(playlist, "csv", path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read export: %v", err)
		}
		if !strings.Contains(string(data), "Bohemian Rhapsody") {
			t.Errorf("export missing track data: %q", string(data))
		}
	})

	t.Run("RejectsUnknownFormat", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "classics.bin")

		if err := WriteExport(playlist, "bin", path); err == nil {
			t.Error("expected error for unknown format")
		}
	})
}
