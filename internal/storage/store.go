package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	// DefaultDir is the artifact directory used when none is given.
	DefaultDir = "output"

	stampLayout = "20060102_150405"
)

// Key identifies a single artifact of an evaluation run.
// The timestamp keeps artifacts of repeated runs apart.
type Key struct {
	Stamp time.Time
	Label string
	Ext   string
}

// Path returns the artifact file name for the key.
func (k Key) Path() string {
	return fmt.Sprintf("%s_%s.%s", k.Label, k.Stamp.Format(stampLayout), k.Ext)
}

// Output writes run artifacts into a single directory.
type Output struct {
	dir string
}

// NewOutput creates an artifact sink, making the directory if it is missing.
func NewOutput(dir string) (*Output, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, fmt.Errorf("could not make dir: %s: %w", dir, err)
		}
	} else if !info.IsDir() {
		return nil, fmt.Errorf("path given is not a directory: %s", dir)
	}
	return &Output{dir: dir}, nil
}

// Path returns the full artifact path for the given key.
func (o *Output) Path(k Key) string {
	return filepath.Join(o.dir, k.Path())
}

// Write stores the given payload under the key and returns the written path.
func (o *Output) Write(k Key, payload []byte) (string, error) {
	p := o.Path(k)

	f, err := os.Create(p)
	if err != nil {
		return "", fmt.Errorf("could not create file '%s': %w", p, err)
	}
	defer f.Close()

	if _, err := f.Write(payload); err != nil {
		return "", fmt.Errorf("could not write bytes to file '%s': %w", p, err)
	}
	return p, nil
}
