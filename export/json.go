package export

import (
	"encoding/json"

	"layed/render"
)

// JSONExporter dumps the draw-command list as JSON, mainly for debugging and
// golden tests of the frame builder.
type JSONExporter struct{}

// NewJSONExporter creates a new JSON exporter.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Export converts the command sequence to indented JSON.
func (e *JSONExporter) Export(commands []render.Command, width, height float64) (string, error) {
	doc := struct {
		Width    float64          `json:"width"`
		Height   float64          `json:"height"`
		Commands []render.Command `json:"commands"`
	}{width, height, commands}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FileExtension returns the file extension for JSON.
func (e *JSONExporter) FileExtension() string {
	return ".json"
}
