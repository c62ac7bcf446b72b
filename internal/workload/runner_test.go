package workload

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/gammazero/deque"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasgdosr/dvec"
)

func mustParse(t *testing.T, script string) []Op {
	t.Helper()
	ops, err := Parse(script)
	require.NoError(t, err)
	return ops
}

func dequeOf(vs ...int) *deque.Deque[int] {
	q := deque.New[int]()
	for _, v := range vs {
		q.PushBack(v)
	}
	return q
}

func TestRunPushBack(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := NewRunner(zerolog.New(&buf).Level(zerolog.DebugLevel), Config{Verify: true})

	rep, err := r.Run(mustParse(t, "back:5"))
	require.NoError(t, err)

	assert.Equal(t, 5, rep.Ops)
	assert.Equal(t, 5, rep.Pushes)
	// 0 -> 1 -> 2 -> 4 -> 8, moving 0, 1, 2 and 3 elements.
	assert.Equal(t, 4, rep.Grows)
	assert.Equal(t, 6, rep.Relocated)
	assert.Equal(t, 5, rep.FinalLen)
	assert.Equal(t, 8, rep.FinalCap)
	assert.InDelta(t, 1.2, rep.Cost.Mean, 1e-9)
	assert.Equal(t, 3.0, rep.Cost.Max)

	assert.Equal(t, 4, strings.Count(buf.String(), `"message":"grew"`))
	assert.Contains(t, buf.String(), `"component":"workload"`)
}

func TestRunCountsDoubleGrowth(t *testing.T) {
	t.Parallel()

	r := NewRunner(zerolog.Nop(), Config{})
	rep, err := r.Run(mustParse(t, "front:2"))
	require.NoError(t, err)

	// The second push doubles twice, 1 -> 2 -> 4, moving the first
	// element each time.
	assert.Equal(t, 3, rep.Grows)
	assert.Equal(t, 2, rep.Relocated)
	assert.Equal(t, 4, rep.FinalCap)
}

func TestRunPops(t *testing.T) {
	t.Parallel()

	r := NewRunner(zerolog.Nop(), Config{Capacity: 4, Verify: true})
	rep, err := r.Run(mustParse(t, "back:2,front:1,popfront:2,popback:2"))
	require.NoError(t, err)

	assert.Equal(t, 3, rep.Pushes)
	assert.Equal(t, 3, rep.Pops)
	assert.Equal(t, 1, rep.EmptyPops)
	assert.Equal(t, 0, rep.FinalLen)
	assert.Equal(t, 0, rep.Grows)
	assert.Equal(t, 4, rep.FinalCap)
}

func TestRunEmpty(t *testing.T) {
	t.Parallel()

	r := NewRunner(zerolog.Nop(), Config{Verify: true})
	rep, err := r.Run(nil)
	require.NoError(t, err)
	assert.Equal(t, Report{}, rep)
}

func TestRunNegativeCapacity(t *testing.T) {
	t.Parallel()

	r := NewRunner(zerolog.Nop(), Config{Capacity: -1})
	_, err := r.Run(mustParse(t, "back"))
	require.ErrorIs(t, err, dvec.ErrNegativeCapacity)
}

func TestRunRandomVerified(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(7, 7))
	for _, capacity := range []int{0, 1, 3, 64} {
		r := NewRunner(zerolog.Nop(), Config{Capacity: capacity, Verify: true})
		rep, err := r.Run(Random(rng, 5000, 0.6, 0.5))
		require.NoError(t, err, "capacity %d", capacity)
		require.Equal(t, 5000, rep.Ops)
		require.Equal(t, rep.Pushes-rep.Pops, rep.FinalLen)
		require.GreaterOrEqual(t, rep.FinalCap, rep.FinalLen)
		// Doubling keeps growth amortized O(1).
		require.Less(t, rep.Cost.Mean, 3.0)
	}
}

func TestCheckPopMismatch(t *testing.T) {
	t.Parallel()

	d := dvec.Of(1, 2)
	oracle := dequeOf(1, 3)

	require.NoError(t, checkShape(d, nil))
	require.ErrorContains(t, checkShape(d, oracle), "back 2, want 3")

	v, ok := d.PopBack()
	require.ErrorContains(t, checkPop(oracle, PopBack, v, ok), "popped 2, want 3")

	require.ErrorContains(t, checkPop(dequeOf(), PopFront, 5, true), "oracle says is empty")
	require.ErrorContains(t, checkPop(dequeOf(4), PopFront, 0, false), "oracle holds 1")
}

func TestReportLogObject(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := zerolog.New(&buf)
	log.Info().EmbedObject(Report{Ops: 3, Cost: Cost{Mean: 0.5}}).Msg("done")

	out := buf.String()
	assert.Contains(t, out, `"ops":3`)
	assert.Contains(t, out, `"cost_mean":0.5`)
}
