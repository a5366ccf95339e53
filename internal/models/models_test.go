package models

import (
	"errors"
	"testing"

	"github.com/soundvault/soundvault/internal/shared"
)

func TestUser(t *testing.T) {
	t.Run("CheckPassword", func(t *testing.T) {
		user := NewUser("u1", "ada", "ada@example.com", "hunter2", false)

		if !user.CheckPassword("ada@example.com", "hunter2") {
			t.Error("expected matching credentials to succeed")
		}
		if user.CheckPassword("ada@example.com", "wrong") {
			t.Error("expected wrong password to fail")
		}
		if user.CheckPassword("other@example.com", "hunter2") {
			t.Error("expected wrong email to fail")
		}
	})

	t.Run("UpgradeToPremium", func(t *testing.T) {
		user := NewUser("u1", "ada", "ada@example.com", "hunter2", false)

		user.UpgradeToPremium()
		if !user.Premium {
			t.Error("expected premium after upgrade")
		}

		user.UpgradeToPremium()
		if !user.Premium {
			t.Error("upgrading twice should be a no-op")
		}
	})

	t.Run("Validate", func(t *testing.T) {
		user := NewUser("", "ada", "ada@example.com", "hunter2", false)
		if err := user.Validate(); err == nil {
			t.Error("expected validation error for missing id")
		}
	})
}

func TestTrack(t *testing.T) {
	artist := NewArtist("a1", "Queen", "")

	t.Run("Play", func(t *testing.T) {
		track := NewTrack("t1", "Bohemian Rhapsody", 354, "/music/br.mp3", artist)

		track.Play()
		track.Play()
		track.Play()

		if track.StreamCount != 3 {
			t.Errorf("expected stream count 3, got %d", track.StreamCount)
		}
	})

	t.Run("Download", func(t *testing.T) {
		track := NewTrack("t1", "Bohemian Rhapsody", 354, "/music/br.mp3", artist)
		free := NewUser("u1", "ada", "ada@example.com", "pw", false)
		premium := NewUser("u2", "grace", "grace@example.com", "pw", true)

		if _, err := track.Download(free); !errors.Is(err, shared.ErrPremiumRequired) {
			t.Errorf("expected ErrPremiumRequired, got %v", err)
		}

		path, err := track.Download(premium)
		if err != nil {
			t.Fatalf("premium download failed: %v", err)
		}
		if path != "/music/br.mp3" {
			t.Errorf("expected file path, got %s", path)
		}
	})

	t.Run("Validate", func(t *testing.T) {
		track := NewTrack("t1", "Song", -1, "", artist)
		if err := track.Validate(); err == nil {
			t.Error("expected validation error for negative duration")
		}

		track = NewTrack("t1", "Song", 10, "", nil)
		if err := track.Validate(); err == nil {
			t.Error("expected validation error for nil artist")
		}
	})
}

func TestAlbum(t *testing.T) {
	t.Run("RegistersWithArtistOnce", func(t *testing.T) {
		artist := NewArtist("a1", "Queen", "")
		album := NewAlbum("al1", "A Night at the Opera", artist, "1975-11-21", "Rock")

		if len(artist.Albums) != 1 || artist.Albums[0] != album {
			t.Fatalf("expected album registered with artist, got %d albums", len(artist.Albums))
		}

		artist.AddAlbum(album)
		if len(artist.Albums) != 1 {
			t.Errorf("re-adding the same album should not duplicate it, got %d", len(artist.Albums))
		}
	})

	t.Run("AddTrack", func(t *testing.T) {
		artist := NewArtist("a1", "Queen", "")
		album := NewAlbum("al1", "A Night at the Opera", artist, "1975-11-21", "Rock")
		track := NewTrack("t1", "Bohemian Rhapsody", 354, "", artist)

		album.AddTrack(track)
		album.AddTrack(track)

		if len(album.Tracks) != 1 {
			t.Errorf("expected 1 track, got %d", len(album.Tracks))
		}
		if track.Album != album {
			t.Error("expected track back-reference to album")
		}
		if track.AlbumTitle() != "A Night at the Opera" {
			t.Errorf("unexpected album title %q", track.AlbumTitle())
		}
	})
}

func TestPlaylist(t *testing.T) {
	artist := NewArtist("a1", "Queen", "")
	owner := NewUser("u1", "ada", "ada@example.com", "pw", false)

	newTracks := func() []*Track {
		return []*Track{
			NewTrack("t1", "One", 100, "", artist),
			NewTrack("t2", "Two", 110, "", artist),
			NewTrack("t3", "Three", 120, "", artist),
		}
	}

	t.Run("PositionsContiguous", func(t *testing.T) {
		playlist := NewPlaylist("p1", "Mix", "", owner, true)
		for _, track := range newTracks() {
			playlist.AddTrack(track)
		}

		for i, entry := range playlist.Entries {
			if entry.Position != i+1 {
				t.Errorf("entry %d has position %d", i, entry.Position)
			}
		}
	})

	t.Run("RemoveRenumbers", func(t *testing.T) {
		playlist := NewPlaylist("p1", "Mix", "", owner, true)
		for _, track := range newTracks() {
			playlist.AddTrack(track)
		}

		if err := playlist.RemoveTrack("t2"); err != nil {
			t.Fatalf("remove failed: %v", err)
		}

		if len(playlist.Entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(playlist.Entries))
		}
		if playlist.Entries[0].Track.ID != "t1" || playlist.Entries[0].Position != 1 {
			t.Errorf("unexpected first entry %v", playlist.Entries[0])
		}
		if playlist.Entries[1].Track.ID != "t3" || playlist.Entries[1].Position != 2 {
			t.Errorf("entry after removal should renumber to 2, got %d", playlist.Entries[1].Position)
		}
	})

	t.Run("RemoveMissing", func(t *testing.T) {
		playlist := NewPlaylist("p1", "Mix", "", owner, true)

		if err := playlist.RemoveTrack("nope"); !errors.Is(err, shared.ErrTrackNotFound) {
			t.Errorf("expected ErrTrackNotFound, got %v", err)
		}
	})
}
