package optvolslack

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bcdannyboy/optvol/pricing"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"
)

type IVHandler struct{}

func NewIVHandler() *IVHandler {
	return &IVHandler{}
}

func (h *IVHandler) HandleCommand(evt *socketmode.Event, client *socketmode.Client) error {
	data := evt.Data.(slack.SlashCommand)
	args := strings.Fields(data.Text)

	if len(args) != 6 {
		_, _, err := client.PostMessage(data.ChannelID,
			slack.MsgOptionText("Usage: /iv <price> <spot> <strike> <years> <rate> <call|put>", false))
		return err
	}

	values := make([]float64, 5)
	for i := 0; i < 5; i++ {
		v, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			_, _, postErr := client.PostMessage(data.ChannelID,
				slack.MsgOptionText(fmt.Sprintf("Argument %d is not a number: %q", i+1, args[i]), false))
			return postErr
		}
		values[i] = v
	}
	optionType := pricing.OptionType(strings.ToLower(args[5]))

	iv, err := pricing.ImpliedVolatility(values[0], values[1], values[2], values[3], values[4], optionType)
	if errors.Is(err, pricing.ErrNotBracketed) {
		_, _, postErr := client.PostMessage(data.ChannelID,
			slack.MsgOptionText("No implied volatility found: the observed price is outside the reachable range.", false))
		return postErr
	}
	if err != nil {
		_, _, postErr := client.PostMessage(data.ChannelID,
			slack.MsgOptionText(fmt.Sprintf("Implied volatility failed: %s", err), false))
		return postErr
	}

	// Re-price at the recovered vol so the residual is visible in the reply.
	repriced, err := pricing.Price(pricing.Contract{
		Spot:         values[1],
		Strike:       values[2],
		TimeToExpiry: values[3],
		RiskFreeRate: values[4],
		Volatility:   iv,
		Type:         optionType,
	})
	if err != nil {
		return err
	}

	msg := fmt.Sprintf("Implied volatility: %.2f%%\nTheoretical price: %.4f\nResidual: %.6f",
		iv*100, repriced, repriced-values[0])
	_, _, err = client.PostMessage(data.ChannelID, slack.MsgOptionText(msg, false))
	return err
}
