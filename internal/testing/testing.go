// package testing contains shared testing utilities
package testing

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/soundvault/soundvault/internal/library"
	"github.com/soundvault/soundvault/internal/models"
)

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// SeedLibrary builds a small populated catalog: two users, two artists, an
// album with one track, a loose track, and a playlist owned by the first
// user containing both tracks.
func SeedLibrary() *library.Library {
	lib := library.New()

	ada := models.NewUser("u1", "ada", "ada@example.com", "pw", true)
	grace := models.NewUser("u2", "grace", "grace@example.com", "pw", false)
	lib.PutUser(ada)
	lib.PutUser(grace)

	queen := models.NewArtist("a1", "Queen", "British rock band")
	beatles := models.NewArtist("a2", "The Beatles", "")
	lib.PutArtist(queen)
	lib.PutArtist(beatles)

	opera := models.NewAlbum("al1", "A Night at the Opera", queen, "1975-11-21", "Rock")
	lib.PutAlbum(opera)

	rhapsody := models.NewTrack("t1", "Bohemian Rhapsody", 354, "/music/br.mp3", queen)
	opera.AddTrack(rhapsody)
	lib.PutTrack(rhapsody)

	letitbe := models.NewTrack("t2", "Let It Be", 243, "", beatles)
	lib.PutTrack(letitbe)

	mix := models.NewPlaylist("p1", "Classics", "all-time hits", ada, true)
	mix.AddTrack(rhapsody)
	mix.AddTrack(letitbe)
	lib.PutPlaylist(mix)

	return lib
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		t.Errorf("Directory does not exist: %s", path)
		return
	}
	if !info.IsDir() {
		t.Errorf("Path is not a directory: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

// MustWriteFile writes content under dir and returns the full path.
func MustWriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file %s: %v", path, err)
	}
	return path
}
