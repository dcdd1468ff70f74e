package bot

// BotConfig represents the configuration for the bot
type BotConfig struct {
	// Long polling timeout in seconds
	UpdateTimeout int
	// Maximum length of a photo caption accepted by Telegram
	MaxCaptionLength int
}

// DefaultConfig returns the default bot configuration
func DefaultConfig() *BotConfig {
	return &BotConfig{
		UpdateTimeout:    60,
		MaxCaptionLength: 1024,
	}
}
