// Package layoutfile saves and loads layouts as versioned JSON documents.
// A load either fully succeeds or returns an error; it never hands back a
// partial object list, so callers can safely keep their previous layout on
// failure.
package layoutfile

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"layed/core"
)

// Version is the current layout file format version.
const Version = 1

// File is the on-disk document structure.
type File struct {
	Version int               `json:"version"`
	Meta    Meta              `json:"meta,omitempty"`
	Objects []core.GridObject `json:"objects"`
}

// Meta carries optional document metadata.
type Meta struct {
	Name    string `json:"name,omitempty"`
	Created string `json:"created,omitempty"`
}

// Save writes the objects to path as an indented JSON document.
func Save(path string, objects []*core.GridObject) error {
	f := File{
		Version: Version,
		Meta:    Meta{Created: time.Now().Format(time.RFC3339)},
		Objects: make([]core.GridObject, len(objects)),
	}
	for i, o := range objects {
		f.Objects[i] = *o
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write layout: %w", err)
	}
	return nil
}

// Load reads and validates a layout document, returning its objects.
// Validation runs against the embedded schema before unmarshalling, and any
// failure returns a nil slice with the error.
func Load(path string) ([]*core.GridObject, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	if err := validate(data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode layout: %w", err)
	}
	if f.Version > Version {
		return nil, fmt.Errorf("layout version %d is newer than supported version %d", f.Version, Version)
	}
	objects := make([]*core.GridObject, len(f.Objects))
	for i := range f.Objects {
		o := f.Objects[i]
		if o.ID == "" {
			// Hand-written files may omit IDs.
			o.ID = uuid.NewString()
		}
		objects[i] = &o
	}
	return objects, nil
}
