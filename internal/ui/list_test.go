package ui

import (
	"strings"
	"testing"

	"github.com/soundvault/soundvault/internal/models"
)

func TestListItems(t *testing.T) {
	artist := models.NewArtist("a1", "Queen", "")
	track := models.NewTrack("t1", "Bohemian Rhapsody", 354, "", artist)

	t.Run("TrackDescriptionCarriesArtistAndDuration", func(t *testing.T) {
		desc := trackItem{track: track}.Description()
		if !strings.Contains(desc, "Queen") || !strings.Contains(desc, "5:54") {
			t.Errorf("unexpected track description %q", desc)
		}
	})

	t.Run("PlaylistDescriptionMarksVisibility", func(t *testing.T) {
		owner := models.NewUser("u1", "ada", "ada@example.com", "pw", false)
		public := models.NewPlaylist("p1", "Open Mix", "", owner, true)
		private := models.NewPlaylist("p2", "Closed Mix", "", owner, false)

		if desc := (playlistItem{playlist: public}).Description(); !strings.Contains(desc, "Public") {
			t.Errorf("expected Public marker, got %q", desc)
		}
		if desc := (playlistItem{playlist: private}).Description(); !strings.Contains(desc, "Private") {
			t.Errorf("expected Private marker, got %q", desc)
		}
	})
}
