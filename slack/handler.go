package optvolslack

import (
	log "github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"
)

type Handler struct {
	helpHandler    *HelpHandler
	priceHandler   *PriceHandler
	greeksHandler  *GreeksHandler
	ivHandler      *IVHandler
	surfaceHandler *SurfaceHandler
	histvolHandler *HistVolHandler
}

func NewHandler() *Handler {
	return &Handler{
		helpHandler:    NewHelpHandler(),
		priceHandler:   NewPriceHandler(),
		greeksHandler:  NewGreeksHandler(),
		ivHandler:      NewIVHandler(),
		surfaceHandler: NewSurfaceHandler(),
		histvolHandler: NewHistVolHandler(),
	}
}

func (h *Handler) Handle(evt *socketmode.Event, client *socketmode.Client) error {
	data := evt.Data.(slack.SlashCommand)

	var err error
	switch data.Command {
	case "/help":
		err = h.helpHandler.HandleCommand(evt, client)
	case "/price":
		err = h.priceHandler.HandleCommand(evt, client)
	case "/greeks":
		err = h.greeksHandler.HandleCommand(evt, client)
	case "/iv":
		err = h.ivHandler.HandleCommand(evt, client)
	case "/surface":
		err = h.surfaceHandler.HandleCommand(evt, client)
	case "/histvol":
		err = h.histvolHandler.HandleCommand(evt, client)
	}
	if err != nil {
		log.WithError(err).WithField("command", data.Command).Error("slash command failed")
	}

	client.Ack(*evt.Request)
	return err
}
