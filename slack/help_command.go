package optvolslack

import (
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"
)

type HelpHandler struct{}

func NewHelpHandler() *HelpHandler {
	return &HelpHandler{}
}

func (h *HelpHandler) HandleCommand(evt *socketmode.Event, client *socketmode.Client) error {
	data := evt.Data.(slack.SlashCommand)
	helpText := "Available commands:\n" +
		"/help - Show this help message\n" +
		"/price <spot> <strike> <years> <rate> <vol> <call|put> - Black-Scholes price\n" +
		"/greeks <spot> <strike> <years> <rate> <vol> <call|put> - Delta/gamma/theta/vega\n" +
		"/iv <price> <spot> <strike> <years> <rate> <call|put> - Implied volatility\n" +
		"/surface <spot> <baseVol> <skew> <smile> [termSlope] - Smile surface summary\n" +
		"/histvol <close1> <close2> ... - Close-to-close historical volatility\n" +
		"Rates and volatilities are fractions (0.05 = 5%), time is in years."

	_, _, err := client.PostMessage(data.ChannelID,
		slack.MsgOptionText(helpText, false))
	return err
}
