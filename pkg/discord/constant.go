package discord

import "time"

const (
	DefaultBaseURL  = "https://discord.com/api/webhooks"
	DefaultTimeout  = 10 * time.Second
	DefaultRetries  = 1
	DefaultRetryGap = 2 * time.Second
	DefaultUsername = "A2AJ Catalogue"

	// Discord rejects embed descriptions longer than this.
	maxDescriptionLength = 4096
)

// Embed colors.
const (
	ColorInfo    = 0x3498DB
	ColorSuccess = 0x2ECC71
	ColorWarning = 0xF1C40F
	ColorError   = 0xE74C3C
)

// DefaultConfig returns default Config.
func DefaultConfig() Config {
	return Config{
		BaseURL:         DefaultBaseURL,
		Timeout:         DefaultTimeout,
		RetryCount:      DefaultRetries,
		RetryDelay:      DefaultRetryGap,
		DefaultUsername: DefaultUsername,
	}
}
