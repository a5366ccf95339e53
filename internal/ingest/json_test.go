package ingest

import (
	"errors"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/soundvault/soundvault/internal/library"
	"github.com/soundvault/soundvault/internal/shared"
)

func quietLogger() *log.Logger {
	logger := shared.NewLogger(nil)
	logger.SetLevel(log.FatalLevel)
	return logger
}

func TestJSONParser(t *testing.T) {
	t.Run("LoadsAllKinds", func(t *testing.T) {
		lib := library.New()
		parser := NewJSONParser(quietLogger())

		payload := `{
			"users": [
				{"user_id": "u1", "username": "ada", "email": "ada@example.com", "premium": true}
			],
			"artists": [
				{"artist_id": "a1", "name": "Queen", "bio": "British rock band"}
			],
			"tracks": [
				{"track_id": "t1", "title": "Bohemian Rhapsody", "duration": 354, "artist": "Queen", "file_path": "/music/br.mp3"}
			],
			"albums": [
				{"album_id": "al1", "title": "A Night at the Opera", "artist": "Queen", "release_date": "1975-11-21", "genre": "Rock"}
			],
			"playlists": [
				{"playlist_id": "p1", "name": "Classics", "owner": "ada", "tracks": [{"track_id": "t1"}]}
			]
		}`

		res, err := parser.Parse(lib, []byte(payload))
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		if res.Loaded != 5 || res.Errors != 0 {
			t.Errorf("expected loaded=5 errors=0, got %+v", res)
		}

		user, ok := lib.User("u1")
		if !ok || !user.Premium {
			t.Error("expected premium user u1")
		}

		track, ok := lib.Track("t1")
		if !ok {
			t.Fatal("expected track t1")
		}
		if track.Artist.Name != "Queen" {
			t.Errorf("track artist not resolved, got %v", track.Artist)
		}

		playlist, ok := lib.Playlist("p1")
		if !ok {
			t.Fatal("expected playlist p1")
		}
		if playlist.Owner != user {
			t.Error("playlist owner not resolved to loaded user")
		}
		if !playlist.Public {
			t.Error("is_public should default to true")
		}
		if len(playlist.Entries) != 1 || playlist.Entries[0].Position != 1 {
			t.Errorf("unexpected playlist entries %v", playlist.Entries)
		}
	})

	t.Run("MalformedDocumentIsFatal", func(t *testing.T) {
		parser := NewJSONParser(quietLogger())

		_, err := parser.Parse(library.New(), []byte(`{"users": [`))
		if !errors.Is(err, shared.ErrInvalidFormat) {
			t.Errorf("expected ErrInvalidFormat, got %v", err)
		}
	})

	t.Run("UnresolvedArtistCountsAsError", func(t *testing.T) {
		lib := library.New()
		parser := NewJSONParser(quietLogger())

		payload := `{"tracks":[{"track_id":"t1","title":"Song","duration":200,"artist":"Ghost"}]}`
		res, err := parser.Parse(lib, []byte(payload))
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}

		if res.Loaded != 0 || res.Errors != 1 {
			t.Errorf("expected loaded=0 errors=1, got %+v", res)
		}
		if len(lib.Tracks()) != 0 {
			t.Error("no track should be inserted")
		}
	})

	t.Run("BadRecordNeverAbortsBatch", func(t *testing.T) {
		lib := library.New()
		parser := NewJSONParser(quietLogger())

		payload := `{
			"artists": [
				{"artist_id": "a1", "name": "Queen"},
				{"artist_id": "a2"},
				{"name": "No ID"},
				{"artist_id": "a3", "name": "The Beatles"}
			]
		}`

		res, err := parser.Parse(lib, []byte(payload))
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		if res.Loaded != 2 || res.Errors != 2 {
			t.Errorf("expected loaded=2 errors=2, got %+v", res)
		}
		if len(lib.Artists()) != 2 {
			t.Errorf("expected 2 artists in graph, got %d", len(lib.Artists()))
		}
	})

	t.Run("MalformedDurationIsRecordError", func(t *testing.T) {
		lib := library.New()
		parser := NewJSONParser(quietLogger())

		payload := `{
			"artists": [{"artist_id": "a1", "name": "Queen"}],
			"tracks": [
				{"track_id": "t1", "title": "Good", "duration": 100, "artist": "Queen"},
				{"track_id": "t2", "title": "Bad", "duration": "three minutes", "artist": "Queen"}
			]
		}`

		res, err := parser.Parse(lib, []byte(payload))
		if err != nil {
			t.Fatalf("malformed record must not be fatal: %v", err)
		}
		if res.Loaded != 2 || res.Errors != 1 {
			t.Errorf("expected loaded=2 errors=1, got %+v", res)
		}
		if !lib.HasTrack("t1") || lib.HasTrack("t2") {
			t.Error("only the well-formed track should be inserted")
		}
	})

	t.Run("DuplicateIDOverwrites", func(t *testing.T) {
		lib := library.New()
		parser := NewJSONParser(quietLogger())

		payload := `{
			"artists": [
				{"artist_id": "a1", "name": "First"},
				{"artist_id": "a1", "name": "Second"}
			]
		}`

		res, err := parser.Parse(lib, []byte(payload))
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		if res.Loaded != 2 || res.Errors != 0 {
			t.Errorf("expected loaded=2 errors=0, got %+v", res)
		}

		if len(lib.Artists()) != 1 {
			t.Fatalf("expected one retained artist, got %d", len(lib.Artists()))
		}
		artist, _ := lib.Artist("a1")
		if artist.Name != "Second" {
			t.Errorf("last-loaded should win, got %s", artist.Name)
		}
	})

	t.Run("PlaylistMissingOwnerDropped", func(t *testing.T) {
		lib := library.New()
		parser := NewJSONParser(quietLogger())

		payload := `{"playlists":[{"playlist_id":"p1","name":"Nope","owner":"nobody"}]}`
		res, err := parser.Parse(lib, []byte(payload))
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		if res.Loaded != 0 || res.Errors != 1 {
			t.Errorf("expected loaded=0 errors=1, got %+v", res)
		}
		if len(lib.Playlists()) != 0 {
			t.Error("playlist should be dropped entirely")
		}
	})

	t.Run("PlaylistInvalidTrackRefsSilentlyDropped", func(t *testing.T) {
		lib := library.New()
		parser := NewJSONParser(quietLogger())

		payload := `{
			"users": [{"user_id": "u1", "username": "ada", "email": "ada@example.com"}],
			"artists": [{"artist_id": "a1", "name": "Queen"}],
			"tracks": [{"track_id": "t1", "title": "One", "duration": 100, "artist": "Queen"}],
			"playlists": [
				{"playlist_id": "p1", "name": "Mix", "owner": "ada", "tracks": [
					{"track_id": "t1"},
					{"track_id": "missing"},
					{"track_id": "also-missing"}
				]}
			]
		}`

		res, err := parser.Parse(lib, []byte(payload))
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		if res.Errors != 0 {
			t.Errorf("invalid playlist track refs must not count as errors, got %d", res.Errors)
		}

		playlist, ok := lib.Playlist("p1")
		if !ok {
			t.Fatal("playlist should still be created")
		}
		if len(playlist.Entries) != 1 || playlist.Entries[0].Track.ID != "t1" {
			t.Errorf("expected only the valid track, got %v", playlist.Entries)
		}
	})

	t.Run("AbsentSectionsYieldZero", func(t *testing.T) {
		parser := NewJSONParser(quietLogger())

		res, err := parser.Parse(library.New(), []byte(`{}`))
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		if res.Loaded != 0 || res.Errors != 0 {
			t.Errorf("expected zero counts, got %+v", res)
		}
	})
}
