package pbm

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/drakos74/hopfield/internal/model"
	"github.com/sourcegraph/conc/iter"
)

// Sample is a pattern together with the file it was loaded from.
type Sample struct {
	Path    string        `json:"path"`
	Pattern model.Pattern `json:"-"`
}

type decoded struct {
	sample Sample
	err    error
}

// List returns the pattern files of the directory sorted by name.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("dataset directory '%s' does not exist: %w", dir, model.NotFoundErr)
		}
		return nil, fmt.Errorf("could not read dataset directory '%s': %w", dir, err)
	}
	// os.ReadDir is already sorted by file name
	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Ext) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return files, nil
}

// LoadDir decodes all pattern files of the directory.
// The files are decoded concurrently but the result keeps the file name order.
// An empty directory gives an empty result, it is up to the caller to decide if that is acceptable.
func LoadDir(dir string) ([]Sample, error) {
	files, err := List(dir)
	if err != nil {
		return nil, err
	}

	results := iter.Map(files, func(path *string) decoded {
		p, err := Read(*path)
		return decoded{
			sample: Sample{Path: *path, Pattern: p},
			err:    err,
		}
	})

	samples := make([]Sample, len(results))
	for i, r := range results {
		if r.err != nil {
			return nil, r.err
		}
		samples[i] = r.sample
	}
	return samples, nil
}

// Patterns extracts the patterns of the samples.
func Patterns(samples []Sample) []model.Pattern {
	patterns := make([]model.Pattern, len(samples))
	for i, s := range samples {
		patterns[i] = s.Pattern
	}
	return patterns
}
