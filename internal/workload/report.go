package workload

import (
	"github.com/montanaflynn/stats"
	"github.com/rs/zerolog"

	"github.com/lucasgdosr/dvec"
)

// Report describes a finished run.
type Report struct {
	Ops       int
	Pushes    int
	Pops      int
	EmptyPops int
	// Grows counts block doublings, including the first allocation.
	Grows int
	// Relocated is the total number of elements moved by growth.
	Relocated int
	FinalLen  int
	FinalCap  int
	// Cost summarizes relocated elements per push.
	Cost Cost
}

// Cost is the distribution of relocated elements per push. Mean is the
// amortized cost.
type Cost struct {
	Mean float64
	P99  float64
	Max  float64
}

func (r Report) finish(d *dvec.DVec[int], costs []float64) Report {
	r.FinalLen = d.Len()
	r.FinalCap = d.Cap()
	r.Cost = summarize(costs)
	return r
}

func summarize(costs []float64) Cost {
	if len(costs) == 0 {
		return Cost{}
	}
	data := stats.Float64Data(costs)
	// The stats helpers only fail on empty input.
	mean, _ := stats.Mean(data)
	p99, _ := stats.Percentile(data, 99)
	maxCost, _ := stats.Max(data)
	return Cost{Mean: mean, P99: p99, Max: maxCost}
}

// MarshalZerologObject lets a report be logged with Event.EmbedObject.
func (r Report) MarshalZerologObject(e *zerolog.Event) {
	e.Int("ops", r.Ops).
		Int("pushes", r.Pushes).
		Int("pops", r.Pops).
		Int("empty_pops", r.EmptyPops).
		Int("grows", r.Grows).
		Int("relocated", r.Relocated).
		Int("len", r.FinalLen).
		Int("cap", r.FinalCap).
		Float64("cost_mean", r.Cost.Mean).
		Float64("cost_p99", r.Cost.P99).
		Float64("cost_max", r.Cost.Max)
}
