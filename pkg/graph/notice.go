package graph

import (
	"fmt"

	"github.com/matzehuels/squashgraph/pkg/migration"
)

// Level is the severity of a [Notice].
type Level int

const (
	// LevelSuccess marks an expected redirect in a live migration.
	LevelSuccess Level = iota
	// LevelError marks a redirect in a squashed migration's own dependencies.
	LevelError
)

// String returns "success" or "error".
func (l Level) String() string {
	if l == LevelError {
		return "error"
	}
	return "success"
}

// Notice reports that a dependency was substituted by its replacement.
type Notice struct {
	Level     Level
	Original  migration.RecordID // dependency as declared
	Resolved  migration.RecordID // dependency after following replacements
	Dependent migration.RecordID // migration declaring the dependency
}

// Message renders the notice as a human readable line.
func (n Notice) Message() string {
	prefix := ""
	if n.Level == LevelError {
		prefix = "squashed "
	}
	return fmt.Sprintf("migration %s replaced by %s in the dependencies of the %smigration %s",
		n.Original.Literal(), n.Resolved.Literal(), prefix, n.Dependent.Literal())
}
