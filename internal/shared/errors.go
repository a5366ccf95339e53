package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Authentication and permission errors
	ErrAuthFailed      = fmt.Errorf("invalid email or password")
	ErrLoginRequired   = fmt.Errorf("login required")
	ErrPremiumRequired = fmt.Errorf("premium account required")
	ErrEmailTaken      = fmt.Errorf("email already registered")

	// Catalog lookup errors
	ErrUserNotFound     = fmt.Errorf("user not found")
	ErrArtistNotFound   = fmt.Errorf("artist not found")
	ErrTrackNotFound    = fmt.Errorf("track not found")
	ErrAlbumNotFound    = fmt.Errorf("album not found")
	ErrPlaylistNotFound = fmt.Errorf("playlist not found")

	// Data file errors
	ErrInvalidFormat  = fmt.Errorf("invalid file format")
	ErrBackupConflict = fmt.Errorf("backup file already exists")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
