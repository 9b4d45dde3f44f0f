package sweep

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/duke-git/lancet/v2/slice"
)

// Pending returns the permutations that still have to run: those without a
// completion marker under resultsDir. Result directories that exist but lack
// the marker were interrupted or failed and are kept. Nothing is written.
func Pending(perms []Permutation, resultsDir string) ([]Permutation, error) {
	var statErr error
	pending := slice.Filter(perms, func(_ int, p Permutation) bool {
		done, err := IsComplete(resultsDir, p.ID)
		if err != nil && statErr == nil {
			statErr = err
		}
		return !done
	})
	if statErr != nil {
		return nil, statErr
	}
	return pending, nil
}

// IsComplete reports whether the permutation id has a completion marker.
func IsComplete(resultsDir, id string) (bool, error) {
	return markerExists(filepath.Join(resultsDir, id, CompleteMarker))
}

func markerExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat %s: %w", path, err)
}
