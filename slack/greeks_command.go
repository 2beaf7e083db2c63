package optvolslack

import (
	"fmt"

	"github.com/bcdannyboy/optvol/pricing"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"
)

type GreeksHandler struct{}

func NewGreeksHandler() *GreeksHandler {
	return &GreeksHandler{}
}

func (h *GreeksHandler) HandleCommand(evt *socketmode.Event, client *socketmode.Client) error {
	data := evt.Data.(slack.SlashCommand)

	contract, err := parseContract(data.Text)
	if err != nil {
		_, _, postErr := client.PostMessage(data.ChannelID,
			slack.MsgOptionText("Usage: /greeks <spot> <strike> <years> <rate> <vol> <call|put>\n"+err.Error(), false))
		return postErr
	}

	greeks, err := pricing.ComputeGreeks(contract)
	if err != nil {
		_, _, postErr := client.PostMessage(data.ChannelID,
			slack.MsgOptionText(fmt.Sprintf("Greeks failed: %s", err), false))
		return postErr
	}

	msg := fmt.Sprintf("%s S=%.2f K=%.2f\nDelta: %.4f\nGamma: %.4f\nTheta: %.4f/day\nVega: %.4f/vol-pt",
		contract.Type, contract.Spot, contract.Strike,
		greeks.Delta, greeks.Gamma, greeks.Theta, greeks.Vega)
	_, _, err = client.PostMessage(data.ChannelID, slack.MsgOptionText(msg, false))
	return err
}
