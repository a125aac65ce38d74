package homework

// Config holds homework generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for homework generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.6,
	}
}
