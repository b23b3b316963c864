package cmd

// Config carries every runtime setting the application reads at startup.
type Config struct {
	HTTPPort      string
	StatsCronSpec string
}
