package patch

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/matzehuels/squashgraph/pkg/errors"
	"github.com/matzehuels/squashgraph/pkg/graph"
	"github.com/matzehuels/squashgraph/pkg/migration"
)

// RegionFunc locates the part of a source file that may be rewritten.
// ok is false when no region was found; the whole file is used then.
type RegionFunc func(src []byte) (start, end int, ok bool)

// Patcher applies replacement maps to migration files.
type Patcher struct {
	Store  Store
	Region RegionFunc
}

// New creates a patcher. A nil store uses the local file system.
func New(store Store, region RegionFunc) *Patcher {
	if store == nil {
		store = FileStore{}
	}
	return &Patcher{Store: store, Region: region}
}

// ReferencePattern matches a literal reference to id, see the package
// documentation for the accepted forms.
func ReferencePattern(id migration.RecordID) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(
		`\(\s*['"]%s['"]\s*,\s*['"]%s['"]\s*,?\s*\)`,
		regexp.QuoteMeta(id.App), regexp.QuoteMeta(id.Name),
	))
}

// Rewrite replaces references to squashed dependencies in src. Only the
// dependencies listed in deps are considered; each is replaced by its final
// replacement in g.
func (p *Patcher) Rewrite(src []byte, deps []migration.RecordID, g *graph.Graph) []byte {
	start, end := 0, len(src)
	if p.Region != nil {
		if s, e, ok := p.Region(src); ok {
			start, end = s, e
		}
	}

	region := src[start:end]
	changed := false
	for _, dep := range deps {
		if !g.IsReplaced(dep) {
			continue
		}
		to := g.Replacement(dep)
		if to == dep {
			continue
		}
		out := ReferencePattern(dep).ReplaceAllLiteral(region, []byte(to.Literal()))
		if !bytes.Equal(out, region) {
			region = out
			changed = true
		}
	}
	if !changed {
		return src
	}

	var buf bytes.Buffer
	buf.Grow(len(src) - (end - start) + len(region))
	buf.Write(src[:start])
	buf.Write(region)
	buf.Write(src[end:])
	return buf.Bytes()
}

// RewriteReferences rewrites every record that is not itself squashed and
// returns the paths of the files that changed. Unchanged files are not
// written, so running it twice with the same graph changes nothing the
// second time.
func (p *Patcher) RewriteReferences(records []migration.Record, g *graph.Graph) ([]string, error) {
	var updated []string
	for _, r := range records {
		if g.IsReplaced(r.ID) || !dependsOnReplaced(r, g) {
			continue
		}
		src, err := p.Store.ReadFile(r.Path)
		if err != nil {
			return updated, errors.Wrap(errors.ErrCodeIO, err, "read %s", r.Path)
		}
		out := p.Rewrite(src, r.Dependencies, g)
		if bytes.Equal(out, src) {
			continue
		}
		if err := p.Store.WriteFile(r.Path, out); err != nil {
			return updated, errors.Wrap(errors.ErrCodeIO, err, "write %s", r.Path)
		}
		updated = append(updated, r.Path)
	}
	return updated, nil
}

// DeleteReplaced removes the file of every squashed record and returns the
// deleted paths.
func (p *Patcher) DeleteReplaced(records []migration.Record, g *graph.Graph) ([]string, error) {
	var deleted []string
	for _, r := range records {
		if !g.IsReplaced(r.ID) {
			continue
		}
		if err := p.Store.Remove(r.Path); err != nil {
			return deleted, errors.Wrap(errors.ErrCodeIO, err, "delete %s", r.Path)
		}
		deleted = append(deleted, r.Path)
	}
	return deleted, nil
}

func dependsOnReplaced(r migration.Record, g *graph.Graph) bool {
	for _, dep := range r.Dependencies {
		if g.IsReplaced(dep) {
			return true
		}
	}
	return false
}
