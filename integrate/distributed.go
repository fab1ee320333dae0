package integrate

import (
	"fmt"

	"github.com/cwbudde/algo-parallel/comm"
	"github.com/cwbudde/algo-parallel/parallel"
)

// Coordinator is the rank that adds the boundary term and receives the
// reduced result.
const Coordinator = 0

// Distributed evaluates rule with n intervals across the participants of c.
// Participant r sums interior nodes k with k mod size == r; the coordinator
// also adds the boundary term. The scaled local sums are reduced to the
// coordinator in one blocking collective.
//
// Only the coordinator's return value is meaningful; other ranks get 0.
// Every rank of c must call Distributed with the same rule and n.
func Distributed(c comm.Comm, rule Rule, n int) (float64, error) {
	g, err := NewGrid(rule, n)
	if err != nil {
		return 0, err
	}

	local := PartialSum(rule, g, c.Rank(), InteriorNodes(rule, g), c.Size())
	if c.Rank() == Coordinator {
		local += Boundary(rule, g)
	}
	local *= Scale(rule, g)

	total, err := c.Reduce(local, parallel.OpSum, Coordinator)
	if err != nil {
		return 0, fmt.Errorf("integrate: %s reduction: %w", rule, err)
	}
	return total, nil
}
