// Package notifications defines the outbound alerts sent over the
// notification channels.
package notifications

import (
	"fmt"

	"github.com/shashiranjanraj/stockwise/config"
	"github.com/shashiranjanraj/stockwise/pkg/notification"
)

// LowStock alerts operators that a category's total has dropped to or
// below its minimum threshold.
type LowStock struct {
	Category string
	Total    int
	Min      int
}

// Via enables only the channels that are actually configured.
func (n *LowStock) Via() []string {
	var channels []string
	if config.AlertMailTo() != "" {
		channels = append(channels, "mail")
	}
	if config.SlackWebhookURL() != "" {
		channels = append(channels, "slack")
	}
	if config.AlertWebhookURL() != "" {
		channels = append(channels, "webhook")
	}
	return channels
}

func (n *LowStock) ToMail() notification.MailData {
	return notification.MailData{
		Subject: fmt.Sprintf("Low stock alert: %s", n.Category),
		Body: fmt.Sprintf("<p><strong>%s</strong> is down to %d units (minimum %d). Restock soon.</p>",
			n.Category, n.Total, n.Min),
	}
}

func (n *LowStock) ToSlack() notification.SlackData {
	return notification.SlackData{
		Text: fmt.Sprintf(":warning: Low stock in %s: %d units (min %d)", n.Category, n.Total, n.Min),
	}
}

func (n *LowStock) ToWebhook() notification.WebhookData {
	return notification.WebhookData{
		URL: config.AlertWebhookURL(),
		Payload: map[string]interface{}{
			"event":    "stock.low",
			"category": n.Category,
			"total":    n.Total,
			"min":      n.Min,
		},
	}
}
