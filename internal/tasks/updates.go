package tasks

import "fmt"

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
}

// Operation phase enumeration
type Phase int

const (
	ExportPlaylist Phase = iota
	WriteManifest
)

func (p Phase) String() string {
	switch p {
	case ExportPlaylist:
		return "export_playlist"
	case WriteManifest:
		return "write_manifest"
	default:
		return ""
	}
}

func exportingPlaylistUpdate(step, total int, name string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportPlaylist,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Exporting: %s...", step, total, name),
	}
}

func exportCompletedUpdate(step, total int, name string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportPlaylist,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✓ %s", step, total, name),
	}
}

func exportFailedUpdate(step, total int, name string, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportPlaylist,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✗ %s: %v", step, total, name, err),
	}
}

func manifestUpdate(path string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   WriteManifest,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Manifest written to %s", path),
	}
}
