// Package graph builds the dependency graph of a set of migrations.
//
// # Overview
//
// [Build] consumes the records produced by a loader and computes three
// things in one pass:
//
//   - the replacement map: which migration each squashed migration was
//     replaced by
//   - the node set: every migration that is a dependency or a dependent
//   - the edge set: "depended upon -> dependent" edges, with dependencies on
//     squashed migrations redirected to their replacement
//
// Redirection only happens when squashed migrations are hidden
// ([Options.HideReplaced]). It follows chains of squashes, so a migration
// replaced by a squash that was itself squashed again resolves to the final
// replacement. A cycle declared among replacements stops at the first
// revisited migration.
//
// # Notices
//
// Every redirected dependency produces a [Notice]. A redirect inside a live
// migration is routine ([LevelSuccess]); a redirect inside a migration that is
// itself squashed means its stored dependencies are stale and is reported as
// [LevelError]. Notices never abort the build.
//
// # Ordering
//
// The graph is immutable after [Build]. All accessors return ids in
// [migration.Compare] order so renderers produce byte-identical output for
// the same input. Notices keep record load order, then dependency
// declaration order.
package graph
