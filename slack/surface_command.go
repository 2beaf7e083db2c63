package optvolslack

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bcdannyboy/optvol/surface"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"
)

const (
	surfaceStrikePoints = 20
	surfaceTenorPoints  = 15
	surfaceMinDays      = 7
	surfaceMaxDays      = 365
)

type SurfaceHandler struct{}

func NewSurfaceHandler() *SurfaceHandler {
	return &SurfaceHandler{}
}

func (h *SurfaceHandler) HandleCommand(evt *socketmode.Event, client *socketmode.Client) error {
	data := evt.Data.(slack.SlashCommand)
	args := strings.Fields(data.Text)

	if len(args) != 4 && len(args) != 5 {
		_, _, err := client.PostMessage(data.ChannelID,
			slack.MsgOptionText("Usage: /surface <spot> <baseVol> <skew> <smile> [termSlope]", false))
		return err
	}

	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			_, _, postErr := client.PostMessage(data.ChannelID,
				slack.MsgOptionText(fmt.Sprintf("Argument %d is not a number: %q", i+1, arg), false))
			return postErr
		}
		values[i] = v
	}

	spot := values[0]
	params := surface.Params{BaseVol: values[1], Skew: values[2], Smile: values[3]}
	cfg := surface.Config{}
	if len(values) == 5 {
		params.TermSlope = values[4]
		cfg.TermStructure = true
	}

	strikes, err := surface.StrikeGrid(spot, 80, 120, surfaceStrikePoints)
	if err != nil {
		return err
	}
	tenors, err := surface.TenorGridDays(surfaceMinDays, surfaceMaxDays, surfaceTenorPoints)
	if err != nil {
		return err
	}

	grid, err := surface.Generate(spot, strikes, tenors, params, cfg)
	if err != nil {
		_, _, postErr := client.PostMessage(data.ChannelID,
			slack.MsgOptionText(fmt.Sprintf("Surface generation failed: %s", err), false))
		return postErr
	}

	minVol, maxVol := grid.Points[0].Volatility, grid.Points[0].Volatility
	floored := 0
	for _, pt := range grid.Points {
		if pt.Volatility < minVol {
			minVol = pt.Volatility
		}
		if pt.Volatility > maxVol {
			maxVol = pt.Volatility
		}
		if pt.Volatility == surface.DefaultFloor {
			floored++
		}
	}

	msg := fmt.Sprintf("Surface over %d strikes x %d tenors (%.2f-%.2f, %d-%d days)\nVol range: %.2f%% - %.2f%%\nCells at floor: %d/%d",
		len(strikes), len(tenors), strikes[0], strikes[len(strikes)-1],
		surfaceMinDays, surfaceMaxDays, minVol*100, maxVol*100, floored, len(grid.Points))
	_, _, err = client.PostMessage(data.ChannelID, slack.MsgOptionText(msg, false))
	return err
}
