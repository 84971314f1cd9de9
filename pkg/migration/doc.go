// Package migration defines the identities and records that make up a
// migration graph.
//
// A [Record] is one migration file of one app. It declares the migrations it
// depends on and, for squashing migrations, the migrations it replaces. Both
// lists hold [RecordID] values, a pair of app label and migration name.
//
// The set of apps taking part in a run is an explicit [Groups] value handed to
// the graph builder and the loader; nothing in this module keeps a global
// selection.
package migration
