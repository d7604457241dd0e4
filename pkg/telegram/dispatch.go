package telegram

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/solarbrief/solarbrief/pkg/log"
	"github.com/solarbrief/solarbrief/pkg/types"
)

// Dispatch sends the report to every recipient in order, with Markdown
// emphasis enabled. Sends are independent and at-most-once per recipient:
// a failure part-way through surfaces, but messages already delivered stay
// delivered.
func Dispatch(ctx context.Context, n Notifier, report types.Report, recipients []string) error {
	text := report.Text()
	for _, chatID := range recipients {
		if err := n.SendMessage(ctx, chatID, text, ParseModeMarkdown); err != nil {
			log.Ctx(ctx).ErrorContext(ctx, "failed to send summary",
				slog.String("chatID", chatID),
				slog.Any("error", err),
			)
			return fmt.Errorf("send to %s: %w", chatID, err)
		}
	}
	return nil
}
