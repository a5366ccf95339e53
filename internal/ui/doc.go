// Package ui implements an interactive terminal catalog browser using
// bubbletea's Elm architecture.
//
// The TUI is a three-level drill-down over the in-memory catalog:
//  1. [SectionView] : Pick a catalog section (artists, albums, tracks, playlists)
//  2. [BrowseView] : Scroll the entities of the chosen section
//  3. [DetailView] : Inspect one entity (an album's tracks, a playlist's entries)
//
// The [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// All data comes from the in-memory entity graph, so there are no async
// commands; every keypress resolves synchronously.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with
// contextual help displayed via charmbracelet/bubbles/help.
package ui
