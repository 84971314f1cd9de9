package render

import (
	"context"
	"os"
	"path/filepath"

	"github.com/matzehuels/squashgraph/pkg/errors"
)

// Export writes src to path. The extension of path selects the format: DOT
// text is written as is, image formats go through r.
//
// Images are rendered into a temporary file next to path and renamed into
// place once the renderer succeeded, so a failing renderer leaves any
// previous file at path untouched.
func Export(ctx context.Context, src string, path string, r Renderer) error {
	f := FormatFromPath(path)
	if !f.IsImage() {
		if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
		}
		return nil
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create temp file for %s", path)
	}
	defer os.Remove(tmp.Name())

	if err := r.Render(ctx, []byte(src), f, tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "close %s", tmp.Name())
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "chmod %s", tmp.Name())
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	return nil
}
