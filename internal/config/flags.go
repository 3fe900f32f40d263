package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagSeed    = flag.Int64("seed", 0, "World seed")
	flagNoise   = flag.String("noise", "", "Noise source: worley or value")
	flagRadius  = flag.Int("radius", -1, "Chunks around the origin in x and z")
	flagHeight  = flag.Int("height", 0, "Chunk layers in y")
	flagWorkers = flag.Int("workers", -1, "Worker goroutines (0 = one per CPU)")
	flagPolicy  = flag.String("unknown", "", "Boundary faces next to ungenerated chunks: draw or cull")
	flagOut     = flag.String("out", "", "Output GLB path")
)

// ParseFlags parses command-line flags. Call it early in main.
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the path given by -config, if any.
func ConfigPath() string {
	return *flagConfig
}

func applyFlags(cfg *Config) {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if set["seed"] {
		cfg.World.Seed = *flagSeed
	}
	if *flagNoise != "" {
		cfg.World.Noise = *flagNoise
	}
	if *flagRadius >= 0 {
		cfg.Pipeline.Radius = *flagRadius
	}
	if *flagHeight > 0 {
		cfg.Pipeline.Height = *flagHeight
	}
	if *flagWorkers >= 0 {
		cfg.Pipeline.Workers = *flagWorkers
	}
	if *flagPolicy != "" {
		cfg.Pipeline.UnknownPolicy = *flagPolicy
	}
	if *flagOut != "" {
		cfg.Export.Path = *flagOut
	}
}
