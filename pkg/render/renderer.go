package render

import (
	"bytes"
	"context"
	"io"
	"os/exec"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/squashgraph/pkg/errors"
)

// Renderer names accepted by [NewRenderer].
const (
	RendererDot     = "dot"
	RendererBuiltin = "builtin"
)

// Renderer converts DOT source into an image.
type Renderer interface {
	Render(ctx context.Context, src []byte, f Format, w io.Writer) error
}

// NewRenderer returns the renderer registered under name. An empty name
// selects [RendererDot].
func NewRenderer(name string) (Renderer, error) {
	switch name {
	case RendererDot, "":
		return ExternalRenderer{}, nil
	case RendererBuiltin:
		return BuiltinRenderer{}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown renderer %q (valid: %s, %s)", name, RendererDot, RendererBuiltin)
	}
}

// ExternalRenderer shells out to the Graphviz dot binary.
type ExternalRenderer struct {
	// Binary is the executable to run. Defaults to "dot".
	Binary string
}

// Render runs `dot -T<format>` with src on standard input and copies its
// standard output to w.
func (r ExternalRenderer) Render(ctx context.Context, src []byte, f Format, w io.Writer) error {
	bin := r.Binary
	if bin == "" {
		bin = "dot"
	}
	path, err := exec.LookPath(bin)
	if err != nil {
		return errors.Wrap(errors.ErrCodeRenderer, err, "%s export requires graphviz. Install with:\n  macOS:  brew install graphviz\n  Linux:  apt install graphviz", f)
	}

	cmd := exec.CommandContext(ctx, path, "-T"+string(f))
	cmd.Stdin = bytes.NewReader(src)
	cmd.Stdout = w

	var errBuf bytes.Buffer
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return errors.Wrap(errors.ErrCodeRenderer, err, "%s -T%s: %s", bin, f, strings.TrimSpace(errBuf.String()))
	}
	return nil
}

// BuiltinRenderer renders with the embedded Graphviz library.
type BuiltinRenderer struct{}

var builtinFormats = map[Format]graphviz.Format{
	FormatPNG: graphviz.PNG,
	FormatSVG: graphviz.SVG,
	FormatJPG: graphviz.JPG,
}

// Render parses src and writes the image in format f to w.
func (BuiltinRenderer) Render(ctx context.Context, src []byte, f Format, w io.Writer) error {
	gf, ok := builtinFormats[f]
	if !ok {
		return errors.New(errors.ErrCodeUnsupported, "builtin renderer cannot produce %s, use --renderer %s", f, RendererDot)
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return errors.Wrap(errors.ErrCodeRenderer, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes(src)
	if err != nil {
		return errors.Wrap(errors.ErrCodeRenderer, err, "parse DOT")
	}
	defer g.Close()

	if err := gv.Render(ctx, g, gf, w); err != nil {
		return errors.Wrap(errors.ErrCodeRenderer, err, "render %s", f)
	}
	return nil
}
