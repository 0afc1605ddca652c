package models

// Config holds the application configuration
type Config struct {
	// Web server port
	Port string

	// Shuffle seed; 0 means time-seeded deals
	Seed int64

	// Enable verbose logging
	Verbose bool

	// Show help
	Help bool
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Port:    "3000",
		Seed:    0,
		Verbose: false,
		Help:    false,
	}
}
