//go:build scip

package main

import (
	"fmt"
	"log"
	"math"

	"github.com/bartolsthoorn/goscip/scip"

	_ "github.com/bartolsthoorn/goscip/internal/native/scipc"
)

// mostFractional branches on the candidate whose LP value is closest to .5.
type mostFractional struct {
	calls int
}

func (r *mostFractional) Execute(candidates []scip.BranchingCandidate) scip.BranchingResult {
	r.calls++
	best := candidates[0]
	for _, c := range candidates[1:] {
		if math.Abs(c.Frac-0.5) < math.Abs(best.Frac-0.5) {
			best = c
		}
	}
	return scip.BranchOn(best)
}

func main() {
	// Maximize: 3 x1 + 4 x2
	// Subject to: 2 x1 + x2 <= 100, x1 + 2 x2 <= 80, x1,x2 >= 0 integer
	model := scip.New().
		HideOutput().
		IncludeDefaultPlugins().
		CreateProb("example").
		SetObjSense(scip.Maximize)
	defer model.Close()

	x1 := model.AddVar(0, scip.Inf(), 3, "x1", scip.Integer)
	x2 := model.AddVar(0, scip.Inf(), 4, "x2", scip.Integer)
	model.AddCons([]*scip.Variable{x1, x2}, []float64{2, 1}, scip.NegInf(), 100, "c1")
	model.AddCons([]*scip.Variable{x1, x2}, []float64{1, 2}, scip.NegInf(), 80, "c2")

	rule := &mostFractional{}
	model.IncludeBranchRule("mostfrac", "most fractional branching", 100000, -1, 1, rule)

	solved := model.Solve()
	defer solved.Close()

	sol := solved.BestSol()
	if sol == nil {
		log.Fatalf("no solution, status %s", solved.Status())
	}
	fmt.Printf("x1 = %.2f, x2 = %.2f\n", sol.Val(x1), sol.Val(x2))
	fmt.Printf("Objective = %.2f\n", solved.ObjVal())
	fmt.Printf("Branching calls = %d\n", rule.calls)
}
