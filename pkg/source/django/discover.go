package django

import (
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/matzehuels/squashgraph/pkg/errors"
)

// migrationsDir is the package holding an app's migrations.
const migrationsDir = "migrations"

// migrationPattern finds migration modules anywhere below a project root.
const migrationPattern = "**/" + migrationsDir + "/*.py"

// skippedDirs are never searched for apps.
var skippedDirs = []string{"node_modules", "site-packages", "__pycache__", "venv"}

// App is a Django app holding a migrations package.
type App struct {
	Label string // app label, e.g. "blog"
	Path  string // app directory, parent of the migrations package
}

// MigrationsPath returns the directory holding the app's migration modules.
func (a App) MigrationsPath() string {
	return filepath.Join(a.Path, migrationsDir)
}

// Discover finds every app below root. Apps are returned sorted by label.
// Hidden directories and virtualenv or vendor directories are skipped.
// Two apps with the same label are reported as a configuration error.
func Discover(root string) ([]App, error) {
	matches, err := doublestar.Glob(os.DirFS(root), migrationPattern)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "search %s for migrations", root)
	}

	seen := make(map[string]string)
	var apps []App
	for _, m := range matches {
		appDir := path.Dir(path.Dir(m))
		if skipped(appDir) {
			continue
		}
		appPath := filepath.Join(root, filepath.FromSlash(appDir))
		label := filepath.Base(appPath)
		if appDir == "." {
			abs, err := filepath.Abs(root)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve %s", root)
			}
			label = filepath.Base(abs)
		}

		if prev, ok := seen[label]; ok {
			if prev == appPath {
				continue
			}
			return nil, errors.New(errors.ErrCodeInvalidConfig, "app label %q found in both %s and %s", label, prev, appPath)
		}
		seen[label] = appPath
		apps = append(apps, App{Label: label, Path: appPath})
	}

	slices.SortFunc(apps, func(a, b App) int { return strings.Compare(a.Label, b.Label) })
	return apps, nil
}

func skipped(dir string) bool {
	if dir == "." {
		return false
	}
	for _, part := range strings.Split(dir, "/") {
		if strings.HasPrefix(part, ".") || slices.Contains(skippedDirs, part) {
			return true
		}
	}
	return false
}
