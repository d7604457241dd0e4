package job

import (
	"github.com/levenlabs/go-lflag"
	"github.com/solarbrief/solarbrief/pkg/portal"
	"github.com/solarbrief/solarbrief/pkg/telegram"
	"github.com/solarbrief/solarbrief/pkg/types"
)

// Configured registers the portal/telegram flags and returns the summary
// job; its config and notifier are filled in once flags are parsed.
func Configured() *Summary {
	j := &Summary{
		newSession: func() portal.Session { return portal.NewSession() },
	}

	username := lflag.String("portal-username", "", "Intelbras portal account")
	password := lflag.String("portal-password", "", "Intelbras portal password")
	token := lflag.String("telegram-token", "", "Telegram bot token; unset disables sending")
	chatIDs := lflag.String("telegram-chat-ids", "", "comma-delimited chat ids to send summaries to")

	lflag.Do(func() {
		j.cfg = types.Config{
			PortalUsername: *username,
			PortalPassword: *password,
			TelegramToken:  *token,
			ChatIDs:        types.ParseChatIDs(*chatIDs),
		}
		j.notifier = telegram.NewClient(j.cfg.TelegramToken)
	})

	return j
}
