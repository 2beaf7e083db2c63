package optvolslack

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bcdannyboy/optvol/histvol"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"
)

type HistVolHandler struct{}

func NewHistVolHandler() *HistVolHandler {
	return &HistVolHandler{}
}

// HandleCommand estimates close-to-close volatility from a pasted series of
// daily closes, oldest first.
func (h *HistVolHandler) HandleCommand(evt *socketmode.Event, client *socketmode.Client) error {
	data := evt.Data.(slack.SlashCommand)
	args := strings.Fields(data.Text)

	if len(args) < 3 {
		_, _, err := client.PostMessage(data.ChannelID,
			slack.MsgOptionText("Usage: /histvol <close1> <close2> <close3> ... (at least 3 daily closes, oldest first)", false))
		return err
	}

	bars := make([]histvol.Bar, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			_, _, postErr := client.PostMessage(data.ChannelID,
				slack.MsgOptionText(fmt.Sprintf("Close %d is not a number: %q", i+1, arg), false))
			return postErr
		}
		bars[i] = histvol.Bar{Open: v, High: v, Low: v, Close: v}
	}

	vol, err := histvol.CloseToClose(bars)
	if err != nil {
		_, _, postErr := client.PostMessage(data.ChannelID,
			slack.MsgOptionText(fmt.Sprintf("Estimation failed: %s", err), false))
		return postErr
	}

	msg := fmt.Sprintf("Close-to-close volatility over %d bars: %.2f%% annualized", len(bars), vol*100)
	_, _, err = client.PostMessage(data.ChannelID, slack.MsgOptionText(msg, false))
	return err
}
