package sweep

import (
	"slices"
	"strconv"
	"strings"

	"github.com/duke-git/lancet/v2/maputil"
)

// Permutation is one point of the sweep. ID doubles as the name of the
// permutation's result directory; Params is appended verbatim to the remote
// executable's command line.
type Permutation struct {
	ID     string
	Params string
}

// assignment is one argument name bound to one of its values.
type assignment struct {
	key, value string
}

// Permutations expands the argument lists into every combination, each
// repeated c.Repeat times. Names are visited in sorted order so identifiers
// are the same from one run to the next, which resuming depends on.
func (c *Config) Permutations() []Permutation {
	if len(c.Arguments) == 0 || c.Repeat <= 0 {
		return nil
	}
	keys := maputil.Keys(c.Arguments)
	slices.Sort(keys)

	combos := [][]assignment{nil}
	for _, k := range keys {
		values := c.Arguments[k]
		next := make([][]assignment, 0, len(combos)*len(values))
		for _, prefix := range combos {
			for _, v := range values {
				combo := make([]assignment, len(prefix), len(prefix)+1)
				copy(combo, prefix)
				next = append(next, append(combo, assignment{k, v}))
			}
		}
		combos = next
	}

	out := make([]Permutation, 0, len(combos)*c.Repeat)
	for _, combo := range combos {
		id, params := render(combo)
		for r := 0; r < c.Repeat; r++ {
			out = append(out, Permutation{ID: id + "_" + strconv.Itoa(r), Params: params})
		}
	}
	return out
}

// render builds the identifier stem ("k=v-k=v") and the flag string
// ("--k=v --k=v") for one combination.
func render(combo []assignment) (string, string) {
	ids := make([]string, len(combo))
	flags := make([]string, len(combo))
	for i, a := range combo {
		ids[i] = a.key + "=" + a.value
		flags[i] = "--" + a.key + "=" + a.value
	}
	return strings.Join(ids, "-"), strings.Join(flags, " ")
}
