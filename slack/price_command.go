package optvolslack

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bcdannyboy/optvol/pricing"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"
)

type PriceHandler struct{}

func NewPriceHandler() *PriceHandler {
	return &PriceHandler{}
}

func (h *PriceHandler) HandleCommand(evt *socketmode.Event, client *socketmode.Client) error {
	data := evt.Data.(slack.SlashCommand)

	contract, err := parseContract(data.Text)
	if err != nil {
		_, _, postErr := client.PostMessage(data.ChannelID,
			slack.MsgOptionText("Usage: /price <spot> <strike> <years> <rate> <vol> <call|put>\n"+err.Error(), false))
		return postErr
	}

	price, err := pricing.Price(contract)
	if err != nil {
		_, _, postErr := client.PostMessage(data.ChannelID,
			slack.MsgOptionText(fmt.Sprintf("Pricing failed: %s", err), false))
		return postErr
	}

	msg := fmt.Sprintf("%s S=%.2f K=%.2f T=%.4fy r=%.2f%% vol=%.2f%%\nPrice: %.4f",
		contract.Type, contract.Spot, contract.Strike, contract.TimeToExpiry,
		contract.RiskFreeRate*100, contract.Volatility*100, price)
	_, _, err = client.PostMessage(data.ChannelID, slack.MsgOptionText(msg, false))
	return err
}

// parseContract reads "<spot> <strike> <years> <rate> <vol> <call|put>" with
// rate and vol as fractions, matching the core API.
func parseContract(text string) (pricing.Contract, error) {
	args := strings.Fields(text)
	if len(args) != 6 {
		return pricing.Contract{}, fmt.Errorf("expected 6 arguments, got %d", len(args))
	}

	values := make([]float64, 5)
	for i := 0; i < 5; i++ {
		v, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return pricing.Contract{}, fmt.Errorf("argument %d is not a number: %q", i+1, args[i])
		}
		values[i] = v
	}

	return pricing.Contract{
		Spot:         values[0],
		Strike:       values[1],
		TimeToExpiry: values[2],
		RiskFreeRate: values[3],
		Volatility:   values[4],
		Type:         pricing.OptionType(strings.ToLower(args[5])),
	}, nil
}
