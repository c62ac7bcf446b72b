package workload

import (
	"fmt"
	"math/bits"

	"github.com/gammazero/deque"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"github.com/lucasgdosr/dvec"
)

// maxMismatches bounds how many divergences a verified run collects before
// it gives up.
const maxMismatches = 20

// Config controls a run.
type Config struct {
	// Capacity presizes the DVec. 0 starts from an empty block.
	Capacity int
	// Verify replays every operation on an independent deque and reports
	// every point where the two disagree.
	Verify bool
}

// Runner applies workloads to a fresh DVec.
type Runner struct {
	log zerolog.Logger
	cfg Config
}

func NewRunner(log zerolog.Logger, cfg Config) *Runner {
	return &Runner{
		log: log.With().Str("component", "workload").Logger(),
		cfg: cfg,
	}
}

// Run applies ops in order and reports what growth cost. With verification
// on, the returned error lists every mismatch against the oracle; the report
// is still filled in.
func (r *Runner) Run(ops []Op) (Report, error) {
	d, err := dvec.WithCapacity[int](r.cfg.Capacity)
	if err != nil {
		return Report{}, fmt.Errorf("could not create dvec with capacity %d: %w", r.cfg.Capacity, err)
	}
	defer d.Release()

	var oracle *deque.Deque[int]
	if r.cfg.Verify {
		oracle = deque.New[int]()
	}

	var (
		rep   Report
		costs []float64
		merr  *multierror.Error
		bad   int
		next  int
		step  int
	)
	mismatch := func(k Kind, err error) {
		bad++
		merr = multierror.Append(merr, fmt.Errorf("step %d (%s): %w", step, k, err))
	}
	for _, op := range ops {
		for range op.Count {
			step++
			rep.Ops++

			if op.Kind.IsPush() {
				moved, grows := r.push(d, op.Kind, next)
				if oracle != nil {
					if op.Kind == PushFront {
						oracle.PushFront(next)
					} else {
						oracle.PushBack(next)
					}
				}
				next++
				rep.Pushes++
				rep.Grows += grows
				rep.Relocated += moved
				costs = append(costs, float64(moved))
			} else {
				v, ok := pop(d, op.Kind)
				if !ok {
					rep.EmptyPops++
				} else {
					rep.Pops++
				}
				if oracle != nil {
					if err := checkPop(oracle, op.Kind, v, ok); err != nil {
						mismatch(op.Kind, err)
					}
				}
			}

			if err := checkShape(d, oracle); err != nil {
				mismatch(op.Kind, err)
			}
			if bad >= maxMismatches {
				r.log.Warn().Int("step", step).Msg("too many mismatches, stopping run")
				return rep.finish(d, costs), merr.ErrorOrNil()
			}
		}
	}

	if oracle != nil {
		if diff := cmp.Diff(oracleContents(oracle), d.MakeSliceCopy(), cmpopts.EquateEmpty()); diff != "" {
			merr = multierror.Append(merr, fmt.Errorf("final contents differ (-oracle +dvec):\n%s", diff))
		}
	}

	rep = rep.finish(d, costs)
	r.log.Debug().
		Int("ops", rep.Ops).
		Int("grows", rep.Grows).
		Msg("run finished")
	return rep, merr.ErrorOrNil()
}

// push applies one push and returns how many elements growth relocated and
// how many times the block doubled.
func (r *Runner) push(d *dvec.DVec[int], k Kind, v int) (moved, grows int) {
	before, length := d.Cap(), d.Len()
	if k == PushFront {
		d.PushFront(v)
	} else {
		d.PushBack(v)
	}
	after := d.Cap()
	if after == before {
		return 0, 0
	}

	if before == 0 {
		grows = 1
	} else {
		// A single push may double more than once.
		grows = bits.Len(uint(after/before)) - 1
	}
	moved = length * grows
	r.log.Debug().
		Str("op", k.String()).
		Int("from", before).
		Int("to", after).
		Int("moved", moved).
		Msg("grew")
	return moved, grows
}

func pop(d *dvec.DVec[int], k Kind) (int, bool) {
	if k == PopFront {
		return d.PopFront()
	}
	return d.PopBack()
}

func checkPop(oracle *deque.Deque[int], k Kind, got int, ok bool) error {
	if oracle.Len() == 0 {
		if ok {
			return fmt.Errorf("popped %d from a dvec the oracle says is empty", got)
		}
		return nil
	}
	if !ok {
		return fmt.Errorf("dvec empty, oracle holds %d elements", oracle.Len())
	}
	var want int
	if k == PopFront {
		want = oracle.PopFront()
	} else {
		want = oracle.PopBack()
	}
	if want != got {
		return fmt.Errorf("popped %d, want %d", got, want)
	}
	return nil
}

func checkShape(d *dvec.DVec[int], oracle *deque.Deque[int]) error {
	front, back := d.Headroom()
	if front < 0 || back < 0 || d.Cap() < d.Len() {
		return fmt.Errorf("bad layout: len %d cap %d headroom %d/%d", d.Len(), d.Cap(), front, back)
	}
	if oracle == nil {
		return nil
	}
	if oracle.Len() != d.Len() {
		return fmt.Errorf("length %d, want %d", d.Len(), oracle.Len())
	}
	if oracle.Len() == 0 {
		return nil
	}
	if f, _ := d.Front(); f != oracle.Front() {
		return fmt.Errorf("front %d, want %d", f, oracle.Front())
	}
	if b, _ := d.Back(); b != oracle.Back() {
		return fmt.Errorf("back %d, want %d", b, oracle.Back())
	}
	return nil
}

func oracleContents(q *deque.Deque[int]) []int {
	s := make([]int, q.Len())
	for i := range s {
		s[i] = q.At(i)
	}
	return s
}
