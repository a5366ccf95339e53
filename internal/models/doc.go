// Package models defines the domain entities of the soundvault music catalog.
//
// The entity graph consists of five kinds of records:
//   - [User] : Listener accounts with a premium flag and local credentials
//   - [Artist] : Performers with a biography and album back-references
//   - [Track] : Songs owned by an artist, optionally placed on an album
//   - [Album] : Ordered track collections owned by an artist
//   - [Playlist] : User-owned, ordered track sequences with 1-based positions
//
// Entities reference each other by shared handle, never by ownership: a
// track's Artist pointer does not control the artist's lifetime. The
// library package owns every entity through its identifier-keyed
// collections; nothing in this package performs I/O.
package models
