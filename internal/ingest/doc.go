// Package ingest loads the soundvault entity graph from flat-file snapshots.
//
// Two structurally parallel parsers consume the catalog's serialized forms:
// [JSONParser] for the structured-document format and [XMLParser] for the
// markup-tree format. Both walk their source in the same fixed stage order
// (users, artists, tracks, albums, playlists), resolve cross-entity
// references through [Resolver], and insert into the library. A bad record
// is skipped and counted, never fatal; a malformed document aborts its
// source with [shared.ErrInvalidFormat].
//
// The parsers deliberately differ in duplicate policy: the JSON parser
// always inserts (last-loaded wins on id collision) while the XML parser
// silently skips ids already present in the graph. With the loader's fixed
// JSON-then-XML order, the XML source can add new ids but never override
// ids the JSON source introduced. This asymmetry is long-standing observable
// behavior and is kept as is.
//
// [Loader] orchestrates both sources, treating each as optional and
// aggregating loaded/error counts across whichever ran.
package ingest
