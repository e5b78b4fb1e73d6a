package scip

import "github.com/bartolsthoorn/goscip/internal/native"

// Solution is a read-only view of a solution stored by SCIP. It is valid
// until its model is closed.
type Solution struct {
	inst *instance
	ptr  native.SolPtr
}

func (s *Solution) engine() native.Engine {
	if s.inst.closed {
		panic("scip: solution used after its model was closed")
	}
	return s.inst.eng
}

// Val returns the value of v in the solution. It panics if v belongs to
// another model.
func (s *Solution) Val(v *Variable) float64 {
	eng := s.engine()
	if v == nil || v.owner != s.inst.owner {
		panic("scip: solution queried for a variable of another model")
	}
	return eng.SolVal(s.ptr, v.ptr)
}

// ObjVal returns the objective value of the solution in the original
// problem space.
func (s *Solution) ObjVal() float64 {
	return s.engine().SolOrigObj(s.ptr)
}

// Values returns the values of vars in the solution, in the same order.
func (s *Solution) Values(vars []*Variable) []float64 {
	vals := make([]float64, len(vars))
	for i, v := range vars {
		vals[i] = s.Val(v)
	}
	return vals
}
