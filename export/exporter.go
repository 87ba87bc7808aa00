// Package export converts rendered draw-command sequences to file formats.
package export

import (
	"fmt"

	"layed/render"
)

// Format represents an export format.
type Format string

const (
	// FormatSVG exports the frame as a scalable vector graphic.
	FormatSVG Format = "svg"
	// FormatJSON exports the raw draw-command list, mainly for debugging.
	FormatJSON Format = "json"
)

// Exporter converts a draw-command sequence to a target format.
type Exporter interface {
	// Export renders the commands into the format, for a canvas of the
	// given size in screen units.
	Export(commands []render.Command, width, height float64) (string, error)
	// FileExtension returns the recommended file extension.
	FileExtension() string
}

// NewExporter creates an exporter for the specified format.
func NewExporter(format Format) (Exporter, error) {
	switch format {
	case FormatSVG:
		return NewSVGExporter(), nil
	case FormatJSON:
		return NewJSONExporter(), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "svg":
		return FormatSVG, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format: %s", s)
	}
}
