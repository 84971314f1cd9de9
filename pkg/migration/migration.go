package migration

import (
	"cmp"
	"fmt"
	"slices"
)

// RecordID identifies a migration by app label and migration name.
// It is comparable and used directly as a map key.
type RecordID struct {
	App  string
	Name string
}

// ID is shorthand for RecordID{App: app, Name: name}.
func ID(app, name string) RecordID {
	return RecordID{App: app, Name: name}
}

// String returns the display form "app:name".
func (id RecordID) String() string {
	return id.App + ":" + id.Name
}

// Literal returns the canonical source encoding ("app", "name") used in
// dependency declarations.
func (id RecordID) Literal() string {
	return fmt.Sprintf("(%q, %q)", id.App, id.Name)
}

// Compare orders ids by app label, then by name.
func Compare(a, b RecordID) int {
	if c := cmp.Compare(a.App, b.App); c != 0 {
		return c
	}
	return cmp.Compare(a.Name, b.Name)
}

// Sort sorts ids in place using [Compare].
func Sort(ids []RecordID) {
	slices.SortFunc(ids, Compare)
}

// Record is a single migration file.
type Record struct {
	ID           RecordID
	Dependencies []RecordID
	Replaces     []RecordID

	// Path is where the record was loaded from. Only the patcher uses it.
	Path string
}

// IsSquash reports whether the record replaces other records.
func (r Record) IsSquash() bool { return len(r.Replaces) > 0 }

// Groups is the set of app labels selected for a run.
type Groups map[string]struct{}

// NewGroups returns a set holding the given labels.
func NewGroups(labels ...string) Groups {
	g := make(Groups, len(labels))
	for _, l := range labels {
		g[l] = struct{}{}
	}
	return g
}

// Has reports whether label is selected.
func (g Groups) Has(label string) bool {
	_, ok := g[label]
	return ok
}

// Contains reports whether the app of id is selected.
func (g Groups) Contains(id RecordID) bool { return g.Has(id.App) }

// Names returns the selected labels in sorted order.
func (g Groups) Names() []string {
	names := make([]string, 0, len(g))
	for l := range g {
		names = append(names, l)
	}
	slices.Sort(names)
	return names
}
