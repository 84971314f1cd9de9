package render

import (
	"path/filepath"
	"slices"
	"strings"
)

// Format is an output format token.
type Format string

// Supported output formats.
const (
	FormatDOT  Format = "dot"
	FormatJSON Format = "json"
	FormatPNG  Format = "png"
	FormatSVG  Format = "svg"
	FormatJPG  Format = "jpg"
	FormatPDF  Format = "pdf"
)

// ImageFormats lists the formats produced by a [Renderer].
var ImageFormats = []Format{FormatPNG, FormatSVG, FormatJPG, FormatPDF}

// IsImage reports whether f requires a renderer.
func (f Format) IsImage() bool {
	return slices.Contains(ImageFormats, f)
}

// FormatFromPath selects the output format from the file extension of path.
// Unknown or missing extensions select [FormatDOT].
func FormatFromPath(path string) Format {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if f := Format(ext); f.IsImage() || f == FormatJSON {
		return f
	}
	return FormatDOT
}
