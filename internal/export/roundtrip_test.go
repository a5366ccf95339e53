package export

import (
	"path/filepath"
	"testing"

	"github.com/soundvault/soundvault/internal/ingest"
	"github.com/soundvault/soundvault/internal/library"
	th "github.com/soundvault/soundvault/internal/testing"
)

// Exporting a catalog and reloading the result must reproduce the same
// entity counts per kind and the same stream aggregate, in both formats.
func TestRoundTrip(t *testing.T) {
	seed := func() *library.Library {
		lib := th.SeedLibrary()
		track, _ := lib.Track("t1")
		track.Play()
		track.Play()
		track.Play()
		return lib
	}

	t.Run("JSON", func(t *testing.T) {
		lib := seed()
		path := filepath.Join(t.TempDir(), "catalog.json")

		if err := NewExporter(quietLogger(), true).WriteJSON(lib, path); err != nil {
			t.Fatalf("export failed: %v", err)
		}

		reloaded := library.New()
		res, err := ingest.NewLoader(quietLogger()).Load(reloaded, path, "")
		if err != nil {
			t.Fatalf("reload failed: %v", err)
		}
		if res.Errors != 0 {
			t.Errorf("round-trip should reload cleanly, got %d errors", res.Errors)
		}

		assertSameCounts(t, lib, reloaded)
	})

	t.Run("XML", func(t *testing.T) {
		lib := seed()
		path := filepath.Join(t.TempDir(), "catalog.xml")

		if err := NewExporter(quietLogger(), true).WriteXML(lib, path); err != nil {
			t.Fatalf("export failed: %v", err)
		}

		reloaded := library.New()
		res, err := ingest.NewLoader(quietLogger()).Load(reloaded, "", path)
		if err != nil {
			t.Fatalf("reload failed: %v", err)
		}
		if res.Errors != 0 {
			t.Errorf("round-trip should reload cleanly, got %d errors", res.Errors)
		}

		assertSameCounts(t, lib, reloaded)
	})

	t.Run("StreamAggregateIdempotent", func(t *testing.T) {
		lib := seed()
		first := filepath.Join(t.TempDir(), "first.json")

		exporter := NewExporter(quietLogger(), false)
		if err := exporter.WriteJSON(lib, first); err != nil {
			t.Fatalf("export failed: %v", err)
		}

		reloaded := library.New()
		if _, err := ingest.NewLoader(quietLogger()).Load(reloaded, first, ""); err != nil {
			t.Fatalf("reload failed: %v", err)
		}

		again := exporter.BuildDocument(reloaded)
		if again.Statistics.TotalStreams != 3 {
			t.Errorf("expected total_streams 3 after round-trip, got %d", again.Statistics.TotalStreams)
		}
	})
}

func assertSameCounts(t *testing.T, want, got *library.Library) {
	t.Helper()

	ws, gs := want.Statistics(), got.Statistics()
	if ws != gs {
		t.Errorf("statistics differ after round-trip: want %+v, got %+v", ws, gs)
	}
}
