// Package workload drives a DVec with push and pop sequences and measures
// how much relocation its growth policy costs.
package workload

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Kind is the operation applied to a DVec.
type Kind uint8

const (
	PushFront Kind = iota
	PushBack
	PopFront
	PopBack
)

var kindNames = map[string]Kind{
	"front":    PushFront,
	"back":     PushBack,
	"popfront": PopFront,
	"popback":  PopBack,
}

func (k Kind) String() string {
	switch k {
	case PushFront:
		return "front"
	case PushBack:
		return "back"
	case PopFront:
		return "popfront"
	case PopBack:
		return "popback"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// IsPush reports whether k adds an element.
func (k Kind) IsPush() bool { return k == PushFront || k == PushBack }

// Op repeats an operation Count times.
type Op struct {
	Kind  Kind
	Count int
}

// ErrBadScript is returned when a workload script cannot be parsed.
var ErrBadScript = errors.New("bad workload script")

// Parse reads a comma separated script such as "front:3,back:2,popfront".
// A step without a count runs once.
func Parse(script string) ([]Op, error) {
	var ops []Op
	for i, step := range strings.Split(script, ",") {
		step = strings.TrimSpace(step)
		if step == "" {
			continue
		}
		name, count, hasCount := strings.Cut(step, ":")
		kind, ok := kindNames[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("step %d: unknown operation %q: %w", i, name, ErrBadScript)
		}
		n := 1
		if hasCount {
			var err error
			n, err = strconv.Atoi(count)
			if err != nil {
				return nil, fmt.Errorf("step %d: invalid count %q: %w: %w", i, count, ErrBadScript, err)
			}
			if n < 0 {
				return nil, fmt.Errorf("step %d: negative count %d: %w", i, n, ErrBadScript)
			}
		}
		ops = append(ops, Op{Kind: kind, Count: n})
	}
	if len(ops) == 0 {
		return nil, fmt.Errorf("empty script: %w", ErrBadScript)
	}
	return ops, nil
}

// Random returns n single-step operations. pushRatio is the share of pushes
// among all operations, and frontRatio the share of front operations among
// both pushes and pops.
func Random(r *rand.Rand, n int, pushRatio, frontRatio float64) []Op {
	ops := make([]Op, n)
	for i := range ops {
		front := r.Float64() < frontRatio
		var k Kind
		switch push := r.Float64() < pushRatio; {
		case push && front:
			k = PushFront
		case push:
			k = PushBack
		case front:
			k = PopFront
		default:
			k = PopBack
		}
		ops[i] = Op{Kind: k, Count: 1}
	}
	return ops
}
