package sweep

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Validate checks the fields every run depends on. Argument names and values
// end up in directory names and remote command lines, so characters that
// would break either are rejected here rather than at dispatch time.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("name is required")
	}
	if strings.ContainsAny(c.Name, "/\x00") || c.Name == "." || c.Name == ".." {
		return fmt.Errorf("name %q must be usable as a directory name", c.Name)
	}
	if len(c.Hosts) == 0 {
		return errors.New("hosts must list at least one host")
	}
	for i, h := range c.Hosts {
		if strings.TrimSpace(h) == "" {
			return fmt.Errorf("hosts[%d] is empty", i)
		}
	}
	if strings.TrimSpace(c.Workdir) == "" {
		return errors.New("workdir is required")
	}
	if strings.TrimSpace(c.Executable) == "" {
		return errors.New("executable is required")
	}
	if c.Repeat < 0 {
		return fmt.Errorf("repeat must be non-negative, got %d", c.Repeat)
	}
	if c.ThreadsPerTask < 0 {
		return fmt.Errorf("threads_per_task must be non-negative, got %d", c.ThreadsPerTask)
	}
	for name, values := range c.Arguments {
		if name == "" || strings.ContainsAny(name, "/=\x00") || strings.IndexFunc(name, unicode.IsSpace) >= 0 {
			return fmt.Errorf("argument name %q is not allowed", name)
		}
		seen := make(map[string]struct{}, len(values))
		for _, v := range values {
			if strings.ContainsAny(v, "/\x00") {
				return fmt.Errorf("arguments.%s: value %q is not allowed", name, v)
			}
			if _, dup := seen[v]; dup {
				return fmt.Errorf("arguments.%s: duplicate value %q", name, v)
			}
			seen[v] = struct{}{}
		}
	}
	// Values may embed "-k=" and make two combinations render alike.
	ids := make(map[string]string)
	for _, p := range c.Permutations() {
		if prev, dup := ids[p.ID]; dup {
			return fmt.Errorf("arguments: %q and %q both produce permutation id %q", prev, p.Params, p.ID)
		}
		ids[p.ID] = p.Params
	}
	return nil
}
