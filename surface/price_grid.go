package surface

import (
	"runtime"
	"sync"

	"github.com/bcdannyboy/optvol/pricing"
	"github.com/shirou/gopsutil/cpu"
	mpb "github.com/vbauerster/mpb/v7"
	"github.com/vbauerster/mpb/v7/decor"
)

const cellBatchSize = 1000

type PricePoint struct {
	Strike       float64
	DaysToExpiry float64
	Price        float64
}

// PriceSurface is the Black-Scholes price over a tenor x strike grid at fixed
// volatility, same row-major orientation as Grid.
type PriceSurface struct {
	Strikes   []float64
	TenorDays []float64
	Points    []PricePoint
}

func (ps *PriceSurface) At(tenorIdx, strikeIdx int) PricePoint {
	return ps.Points[tenorIdx*len(ps.Strikes)+strikeIdx]
}

type cellJob struct {
	index    int
	strike   float64
	days     float64
	contract pricing.Contract
}

// PriceGrid evaluates the pricer per cell across a worker pool; cells are
// independent so the pool needs no coordination beyond the result slots.
func PriceGrid(spot, riskFreeRate, volatility float64, optionType pricing.OptionType, strikes, tenorDays []float64) (*PriceSurface, error) {
	if err := validateInputs(spot, strikes, tenorDays); err != nil {
		return nil, err
	}

	jobs := make([]cellJob, 0, len(strikes)*len(tenorDays))
	for _, days := range tenorDays {
		for _, strike := range strikes {
			jobs = append(jobs, cellJob{
				index:  len(jobs),
				strike: strike,
				days:   days,
				contract: pricing.Contract{
					Spot:         spot,
					Strike:       strike,
					TimeToExpiry: days / 365,
					RiskFreeRate: riskFreeRate,
					Volatility:   volatility,
					Type:         optionType,
				},
			})
		}
	}

	// Validate one representative contract up front so parameter errors
	// surface before any worker runs.
	if err := jobs[0].contract.Validate(); err != nil {
		return nil, err
	}

	numWorkers := runtime.NumCPU()
	if counts, err := cpu.Counts(true); err == nil && counts > 0 {
		numWorkers = counts
	}

	p := mpb.New(mpb.WithWidth(64))
	bar := p.AddBar(int64(len(jobs)),
		mpb.PrependDecorators(
			decor.Name("Pricing"),
			decor.Percentage(decor.WCSyncSpace),
		),
		mpb.AppendDecorators(
			decor.CountersNoUnit("(%d / %d)", decor.WCSyncSpace),
		),
	)

	points := make([]PricePoint, len(jobs))
	errs := make([]error, len(jobs))

	var wg sync.WaitGroup
	jobChan := make(chan cellJob, cellBatchSize)
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobChan {
				price, err := pricing.Price(j.contract)
				if err != nil {
					errs[j.index] = err
				}
				points[j.index] = PricePoint{Strike: j.strike, DaysToExpiry: j.days, Price: price}
				bar.Increment()
			}
		}()
	}

	for _, j := range jobs {
		jobChan <- j
	}
	close(jobChan)
	wg.Wait()
	p.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return &PriceSurface{Strikes: strikes, TenorDays: tenorDays, Points: points}, nil
}
