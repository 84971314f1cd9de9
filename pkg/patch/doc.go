// Package patch rewrites and deletes migration files after a squash.
//
// Both operations are driven by the replacement map of a [graph.Graph] and
// are opt-in:
//
//   - [Patcher.RewriteReferences] points dependencies on squashed migrations
//     at their final replacement
//   - [Patcher.DeleteReplaced] removes the files of squashed migrations
//
// # Reference encoding
//
// A dependency reference is matched as a parenthesised pair of quoted
// strings, exactly as Django writes them:
//
//	("app", "0002_post_slug")
//	( 'app' , '0002_post_slug', )
//
// Single and double quotes are accepted, whitespace (including newlines) may
// surround each element, and one trailing comma is allowed. The app label and
// migration name must match literally. The replacement is always written in
// the canonical ("app", "name") form. When a region function is configured,
// only text inside the region (the dependencies list) is searched.
//
// # Failure
//
// Files are patched one after another without a transaction. The first
// failing read, write or delete aborts the batch; files already written stay
// written. The paths handled before the failure are still returned.
package patch
