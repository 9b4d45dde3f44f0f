package sweep

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPermutations_ScenarioIDsAndOrder(t *testing.T) {
	c := &Config{Repeat: 1, Arguments: map[string][]string{
		"seed": {"1", "2"},
		"lr":   {"0.1", "0.2"},
	}}
	perms := c.Permutations()
	ids := make([]string, 0, len(perms))
	for _, p := range perms {
		ids = append(ids, p.ID)
	}
	require.Equal(t, []string{
		"lr=0.1-seed=1_0",
		"lr=0.1-seed=2_0",
		"lr=0.2-seed=1_0",
		"lr=0.2-seed=2_0",
	}, ids)
	require.Equal(t, "--lr=0.1 --seed=1", perms[0].Params)
	require.Equal(t, "--lr=0.2 --seed=2", perms[3].Params)
}

func TestPermutations_CountIsRepeatTimesProduct(t *testing.T) {
	cases := []struct {
		name   string
		args   map[string][]string
		repeat int
		want   int
	}{
		{"empty mapping", map[string][]string{}, 3, 0},
		{"nil mapping", nil, 1, 0},
		{"single", map[string][]string{"a": {"x"}}, 1, 1},
		{"product", map[string][]string{"a": {"1", "2", "3"}, "b": {"x", "y"}}, 2, 12},
		{"three dims", map[string][]string{"a": {"1", "2"}, "b": {"1", "2"}, "c": {"1", "2", "3", "4"}}, 1, 16},
		{"empty list", map[string][]string{"a": {"1", "2"}, "b": {}}, 2, 0},
		{"zero repeat", map[string][]string{"a": {"1"}}, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := &Config{Repeat: tc.repeat, Arguments: tc.args}
			require.Len(t, c.Permutations(), tc.want)
		})
	}
}

func TestPermutations_IDsDistinctAndDeterministic(t *testing.T) {
	c := &Config{Repeat: 3, Arguments: map[string][]string{
		"alpha": {"0", "1", "2"},
		"beta":  {"a", "b"},
		"Gamma": {"x", "y"},
	}}
	first := c.Permutations()
	seen := make(map[string]struct{}, len(first))
	for _, p := range first {
		_, dup := seen[p.ID]
		require.False(t, dup, "duplicate id %s", p.ID)
		seen[p.ID] = struct{}{}
	}
	for i := 0; i < 5; i++ {
		require.Equal(t, first, c.Permutations())
	}
}

func TestPermutations_RepeatSuffixes(t *testing.T) {
	c := &Config{Repeat: 3, Arguments: map[string][]string{"n": {"1"}}}
	perms := c.Permutations()
	require.Equal(t, []Permutation{
		{ID: "n=1_0", Params: "--n=1"},
		{ID: "n=1_1", Params: "--n=1"},
		{ID: "n=1_2", Params: "--n=1"},
	}, perms)
}
