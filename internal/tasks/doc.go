// Package tasks orchestrates long-running catalog operations with real-time progress reporting.
//
// # Core Operations
//
// [Engine.BulkExport] renders every given playlist to disk concurrently:
//   - A fixed worker pool pulls playlists off a jobs channel
//   - Each playlist is rendered through internal/formatter in the chosen format
//   - A manifest JSON summarizing successes and failures is written last
//
// # Progress Reporting
//
// All operations use non-blocking channels for progress updates.
//
// The [ProgressUpdate] struct contains phase, step counters, and messages
// for display by the CLI or a TUI. Updates use select with default to
// prevent blocking; a nil channel disables reporting entirely.
package tasks
