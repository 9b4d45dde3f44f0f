package sweep

import "path/filepath"

// Summary counts permutations by the marker found in their result directory.
type Summary struct {
	Total     int      `yaml:"total"`
	Complete  int      `yaml:"complete"`
	Failed    int      `yaml:"failed"`
	Pending   int      `yaml:"pending"`
	FailedIDs []string `yaml:"failed_ids,omitempty"`
}

// Summarize classifies every permutation against resultsDir. A directory
// holding the failure marker counts as failed; one with neither marker, or
// no directory at all, counts as pending.
func Summarize(perms []Permutation, resultsDir string) (Summary, error) {
	s := Summary{Total: len(perms)}
	for _, p := range perms {
		done, err := IsComplete(resultsDir, p.ID)
		if err != nil {
			return Summary{}, err
		}
		if done {
			s.Complete++
			continue
		}
		failed, err := markerExists(filepath.Join(resultsDir, p.ID, FailedMarker))
		if err != nil {
			return Summary{}, err
		}
		if failed {
			s.Failed++
			s.FailedIDs = append(s.FailedIDs, p.ID)
			continue
		}
		s.Pending++
	}
	return s, nil
}
