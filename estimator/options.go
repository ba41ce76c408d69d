package estimator

import (
	"fmt"
	"math"
	"strings"
)

// Order is the order in which surviving organisms appear in a Result.
type Order int

const (
	// OrderReversed lists the last organism of the input first, which lines
	// up with bottom-to-top box plot axes.
	OrderReversed Order = iota
	OrderInput
)

var orderNames = map[string]Order{
	"reversed": OrderReversed,
	"input":    OrderInput,
}

func (o Order) String() string {
	for k, v := range orderNames {
		if v == o {
			return k
		}
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

func ParseOrder(name string) (Order, error) {
	o, exists := orderNames[strings.ToLower(name)]
	if !exists {
		return 0, fmt.Errorf("Order %q is not found. Valid orders include: %s", name, joinKeys(orderNames))
	}
	return o, nil
}

const DefaultCutoff = 0.01

type Options struct {
	// Organisms whose largest composition fraction is below Cutoff are
	// dropped. Must lie in [0, 1).
	Cutoff float64

	Mode       ModePolicy
	Convention Convention
	Order      Order

	// Workers > 1 computes per-organism backgrounds concurrently.
	Workers int
}

func DefaultOptions() Options {
	return Options{
		Cutoff:     DefaultCutoff,
		Mode:       ModeFirstSeen,
		Convention: ConventionCandidates,
		Order:      OrderReversed,
		Workers:    1,
	}
}

func (o Options) Validate() error {
	if math.IsNaN(o.Cutoff) || o.Cutoff < 0 || o.Cutoff >= 1 {
		return fmt.Errorf("Cutoff must be in [0, 1), got %v", o.Cutoff)
	}
	if _, exists := modePolicyNames[o.Mode.String()]; !exists {
		return fmt.Errorf("Unknown mode policy %d", int(o.Mode))
	}
	if _, exists := conventionNames[o.Convention.String()]; !exists {
		return fmt.Errorf("Unknown convention %d", int(o.Convention))
	}
	if _, exists := orderNames[o.Order.String()]; !exists {
		return fmt.Errorf("Unknown order %d", int(o.Order))
	}
	if o.Workers < 0 {
		return fmt.Errorf("Workers must not be negative, got %d", o.Workers)
	}

	return nil
}
