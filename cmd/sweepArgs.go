package cmd

// sweepArgs returns the config path and output root given as positional
// arguments, falling back to experiment.toml and results.
func sweepArgs(args []string) (configPath, outputRoot string) {
	configPath, outputRoot = defaultConfigPath, defaultOutputRoot
	if len(args) > 0 && args[0] != "" {
		configPath = args[0]
	}
	if len(args) > 1 && args[1] != "" {
		outputRoot = args[1]
	}
	return configPath, outputRoot
}
