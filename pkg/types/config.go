package types

import "strings"

// PlaceholderToken is the sample bot token from the deployment template. It
// is treated the same as an unset token so a fresh deployment doesn't try
// to talk to Telegram with it.
const PlaceholderToken = "YOUR-BOT-TOKEN"

// Config carries everything the jobs need, passed explicitly at
// construction. Components never reach into flags or the environment
// themselves.
type Config struct {
	// Portal credentials; each run logs in fresh with these.
	PortalUsername string
	PortalPassword string

	// Telegram bot token and the chat ids the summary goes to.
	TelegramToken string
	ChatIDs       []string

	// Hours between summary runs.
	IntervalHours int

	// Home Assistant endpoint used by the sensor-sync job.
	HubURL   string
	HubToken string
}

// TelegramConfigured reports whether the bot token is usable. The
// placeholder counts as not configured.
func (c Config) TelegramConfigured() bool {
	return c.TelegramToken != "" && c.TelegramToken != PlaceholderToken
}

// HasRecipients reports whether any chat id is configured.
func (c Config) HasRecipients() bool {
	return len(c.ChatIDs) > 0
}

// ParseChatIDs splits a comma-delimited chat-id list, trimming whitespace
// and dropping blank entries. An empty string, or a list that is nothing but
// blanks, yields nil: "no recipients configured" rather than an error.
func ParseChatIDs(s string) []string {
	var ids []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		ids = append(ids, part)
	}
	return ids
}
