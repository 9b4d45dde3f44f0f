package cmd

import "strings"

// envKeyReplacer maps flag names to environment names, so --remote-root is
// read from MNER_REMOTE_ROOT.
var envKeyReplacer = strings.NewReplacer("-", "_")
