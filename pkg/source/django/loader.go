package django

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/squashgraph/pkg/errors"
	"github.com/matzehuels/squashgraph/pkg/migration"
)

// Loader reads the migration records of apps.
type Loader struct {
	parser *Parser
	logger *log.Logger
}

// NewLoader creates a loader. A nil logger discards debug output.
func NewLoader(logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{parser: NewParser(), logger: logger}
}

// Load returns the records of app ordered by file name. An app without a
// migrations directory has no records.
func (l *Loader) Load(ctx context.Context, app App) ([]migration.Record, error) {
	dir := app.MigrationsPath()
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		l.logger.Debug("No migrations directory", "app", app.Label, "path", dir)
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read %s", dir)
	}

	var records []migration.Record
	for _, e := range entries {
		name := e.Name()
		if name == "__init__.py" || !strings.HasSuffix(name, ".py") {
			continue
		}
		path := filepath.Join(dir, name)
		if !isFile(path, e) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rec, err := l.loadFile(ctx, app.Label, path)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	l.logger.Debug("Loaded migrations", "app", app.Label, "count", len(records))
	return records, nil
}

// LoadAll loads every app whose label is in groups, in the order given.
func (l *Loader) LoadAll(ctx context.Context, apps []App, groups migration.Groups) ([]migration.Record, error) {
	var records []migration.Record
	for _, app := range apps {
		if !groups.Has(app.Label) {
			continue
		}
		recs, err := l.Load(ctx, app)
		if err != nil {
			return nil, err
		}
		records = append(records, recs...)
	}
	return records, nil
}

func (l *Loader) loadFile(ctx context.Context, app, path string) (migration.Record, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return migration.Record{}, errors.Wrap(errors.ErrCodeIO, err, "read %s", path)
	}
	decl, err := l.parser.Parse(ctx, src)
	if err != nil {
		return migration.Record{}, errors.Wrap(errors.ErrCodeParse, err, "migration %s", path)
	}
	return migration.Record{
		ID:           migration.ID(app, strings.TrimSuffix(filepath.Base(path), ".py")),
		Dependencies: decl.Dependencies,
		Replaces:     decl.Replaces,
		Path:         path,
	}, nil
}

// isFile follows symlinks like os.Stat does.
func isFile(path string, e fs.DirEntry) bool {
	if e.Type().IsRegular() {
		return true
	}
	if e.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
