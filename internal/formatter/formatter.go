// package formatter provides functions to export playlist data to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/soundvault/soundvault/internal/models"
	"github.com/soundvault/soundvault/internal/shared"
)

// ExportToCSV converts a playlist to CSV format with columns: Position, ID, Title, Artist, Duration
func ExportToCSV(playlist *models.Playlist) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Position", "ID", "Title", "Artist", "Duration"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, entry := range playlist.Entries {
		record := []string{
			strconv.Itoa(entry.Position),
			entry.Track.ID,
			entry.Track.Title,
			entry.Track.Artist.Name,
			strconv.Itoa(entry.Track.Duration),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a playlist to Markdown format
func ExportToMarkdown(playlist *models.Playlist) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", playlist.Name))

	if playlist.Description != "" {
		buf.WriteString(fmt.Sprintf("**Description**: %s\n\n", playlist.Description))
	}

	buf.WriteString(fmt.Sprintf("**Owner**: %s\n", playlist.Owner.Username))
	buf.WriteString(fmt.Sprintf("**Tracks**: %d\n", len(playlist.Entries)))
	buf.WriteString(fmt.Sprintf("**Visibility**: %s\n\n", shared.VisibilityString(playlist.Public)))

	buf.WriteString("## Tracks\n\n")
	for _, entry := range playlist.Entries {
		duration := shared.FormatDuration(entry.Track.Duration)
		albumPart := ""
		if title := entry.Track.AlbumTitle(); title != "" {
			albumPart = fmt.Sprintf(" (%s)", title)
		}
		buf.WriteString(fmt.Sprintf("%d. %s - %s%s [%s]\n", entry.Position, entry.Track.Artist.Name, entry.Track.Title, albumPart, duration))
	}

	return buf.Bytes(), nil
}

// ExportToText converts a playlist to plain text format
func ExportToText(playlist *models.Playlist) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Playlist: %s\n", playlist.Name))
	if playlist.Description != "" {
		buf.WriteString(fmt.Sprintf("Description: %s\n", playlist.Description))
	}
	buf.WriteString(fmt.Sprintf("Tracks: %d\n\n", len(playlist.Entries)))

	for _, entry := range playlist.Entries {
		buf.WriteString(fmt.Sprintf("%d. %s - %s\n", entry.Position, entry.Track.Artist.Name, entry.Track.Title))
	}

	return buf.Bytes(), nil
}

// WriteExport renders playlist in the given format ("csv", "markdown" or
// "txt") and writes it to path, creating any missing directory.
func WriteExport(playlist *models.Playlist, format, path string) error {
	var data []byte
	var err error

	switch format {
	case "csv":
		data, err = ExportToCSV(playlist)
	case "markdown", "md":
		data, err = ExportToMarkdown(playlist)
	case "txt", "text":
		data, err = ExportToText(playlist)
	default:
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	return nil
}
