package engine

// Config configures the window and the simulation rate.
type Config struct {
	WindowWidth  int
	WindowHeight int
	WindowName   string
	Fullscreen   bool

	// TicksPerSecond is the fixed rate at which the update callback
	// and the physics step are executed.
	TicksPerSecond int
}

func DefaultConfig() Config {
	return Config{
		WindowWidth:    800,
		WindowHeight:   600,
		WindowName:     "WillEngine",
		TicksPerSecond: 60,
	}
}

// withDefaults fills in zero values from DefaultConfig.
func (c Config) withDefaults() Config {
	defaults := DefaultConfig()

	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		c.WindowWidth = defaults.WindowWidth
		c.WindowHeight = defaults.WindowHeight
	}

	if c.WindowName == "" {
		c.WindowName = defaults.WindowName
	}

	if c.TicksPerSecond <= 0 {
		c.TicksPerSecond = defaults.TicksPerSecond
	}

	return c
}
