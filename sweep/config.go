package sweep

// Config models the sweep file. It is loaded once and shared read-only by
// every component for the lifetime of a run.
type Config struct {
	Name           string              `toml:"name" yaml:"name"`
	Hosts          []string            `toml:"hosts" yaml:"hosts"`
	Workdir        string              `toml:"workdir" yaml:"workdir"`
	Executable     string              `toml:"executable" yaml:"executable"`
	Repeat         int                 `toml:"repeat" yaml:"repeat"`
	ThreadsPerTask int                 `toml:"threads_per_task" yaml:"threads_per_task"`
	Arguments      map[string][]string `toml:"arguments" yaml:"arguments"`
}
