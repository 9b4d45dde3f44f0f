package remote

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShellQuote(t *testing.T) {
	cases := map[string]string{
		"":                    "''",
		"simple":              "simple",
		"/tmp/mner/sweep":     "/tmp/mner/sweep",
		"--alpha=1":           "--alpha=1",
		"with space":          "'with space'",
		"it's":                `'it'\''s'`,
		"$HOME":               "'$HOME'",
		"a;rm -rf /":          "'a;rm -rf /'",
		"user@host:/path,x+y": "user@host:/path,x+y",
	}
	for in, want := range cases {
		require.Equal(t, want, ShellQuote(in), "input %q", in)
	}
}
