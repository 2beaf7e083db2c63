package main

import (
	"io/ioutil"
	"os"
	"strconv"

	"github.com/bcdannyboy/optvol/pricing"
	optvolslack "github.com/bcdannyboy/optvol/slack"
	"github.com/bcdannyboy/optvol/surface"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/xhhuango/json"
)

const (
	defaultRiskFreeRate = 0.0379
	demoSpot            = 100.0
	demoStrike          = 100.0
	demoYears           = 0.25
	demoVol             = 0.20
	mcPaths             = 100000
	mcSeed              = 42
)

type demoReport struct {
	Contract          pricing.Contract `json:"contract"`
	Price             float64          `json:"price"`
	MonteCarloPrice   float64          `json:"monte_carlo_price"`
	Greeks            pricing.Greeks   `json:"greeks"`
	ImpliedVolatility float64          `json:"implied_volatility"`
	Residual          float64          `json:"residual"`
	SurfaceMinVol     float64          `json:"surface_min_vol"`
	SurfaceMaxVol     float64          `json:"surface_max_vol"`
	PriceGridCells    int              `json:"price_grid_cells"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, using environment as-is")
	}

	appToken := os.Getenv("SLACK_APP_TOKEN")
	botToken := os.Getenv("SLACK_BOT_TOKEN")
	if appToken != "" && botToken != "" {
		log.Info("starting slack bot")
		bot := optvolslack.NewSlackBot(appToken, botToken)
		if err := bot.Start(); err != nil {
			log.Fatalf("slack bot stopped: %s", err)
		}
		return
	}

	runDemo()
}

func runDemo() {
	rfr := envFloat("RISK_FREE_RATE", defaultRiskFreeRate)

	contract := pricing.Contract{
		Spot:         demoSpot,
		Strike:       demoStrike,
		TimeToExpiry: demoYears,
		RiskFreeRate: rfr,
		Volatility:   demoVol,
		Type:         pricing.Call,
	}

	price, err := pricing.Price(contract)
	if err != nil {
		log.Fatalf("pricing failed: %s", err)
	}
	greeks, err := pricing.ComputeGreeks(contract)
	if err != nil {
		log.Fatalf("greeks failed: %s", err)
	}
	mcPrice, err := pricing.MonteCarloPrice(contract, mcPaths, 1, mcSeed)
	if err != nil {
		log.Fatalf("monte carlo failed: %s", err)
	}

	iv, err := pricing.ImpliedVolatility(price, contract.Spot, contract.Strike,
		contract.TimeToExpiry, contract.RiskFreeRate, contract.Type)
	if err != nil {
		log.Fatalf("implied volatility failed: %s", err)
	}
	repriced, err := pricing.Price(pricing.Contract{
		Spot:         contract.Spot,
		Strike:       contract.Strike,
		TimeToExpiry: contract.TimeToExpiry,
		RiskFreeRate: contract.RiskFreeRate,
		Volatility:   iv,
		Type:         contract.Type,
	})
	if err != nil {
		log.Fatalf("re-pricing failed: %s", err)
	}

	log.WithFields(log.Fields{
		"price":    price,
		"mc_price": mcPrice,
		"delta":    greeks.Delta,
		"iv":       iv,
	}).Info("reference contract priced")

	strikes, err := surface.StrikeGrid(contract.Spot, 80, 120, 25)
	if err != nil {
		log.Fatalf("strike grid failed: %s", err)
	}
	tenors, err := surface.TenorGridDays(7, 365, 20)
	if err != nil {
		log.Fatalf("tenor grid failed: %s", err)
	}

	// The smile parameters mirror the dashboard defaults; base vol would
	// come from histvol.CloseToClose when daily bars are available.
	params := surface.Params{BaseVol: demoVol, Skew: -0.02, Smile: 0.02, TermSlope: 0.01}
	grid, err := surface.Generate(contract.Spot, strikes, tenors, params, surface.Config{TermStructure: true})
	if err != nil {
		log.Fatalf("surface generation failed: %s", err)
	}

	minVol, maxVol := grid.Points[0].Volatility, grid.Points[0].Volatility
	for _, pt := range grid.Points {
		if pt.Volatility < minVol {
			minVol = pt.Volatility
		}
		if pt.Volatility > maxVol {
			maxVol = pt.Volatility
		}
	}

	prices, err := surface.PriceGrid(contract.Spot, contract.RiskFreeRate, contract.Volatility,
		contract.Type, strikes, tenors)
	if err != nil {
		log.Fatalf("price grid failed: %s", err)
	}

	report := demoReport{
		Contract:          contract,
		Price:             price,
		MonteCarloPrice:   mcPrice,
		Greeks:            greeks,
		ImpliedVolatility: iv,
		Residual:          repriced - price,
		SurfaceMinVol:     minVol,
		SurfaceMaxVol:     maxVol,
		PriceGridCells:    len(prices.Points),
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("marshal failed: %s", err)
	}
	if err := ioutil.WriteFile("results.json", out, 0644); err != nil {
		log.Fatalf("write failed: %s", err)
	}
	log.Info("wrote results.json")
}

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.WithField(key, raw).Warn("ignoring unparsable value")
		return fallback
	}
	return v
}
