package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/bartolsthoorn/goscip/scip"
)

// Report is the outcome of one solve.
type Report struct {
	Problem      string          `json:"problem"`
	Status       string          `json:"status"`
	Objective    *float64        `json:"objective,omitempty"`
	Nodes        int64           `json:"nodes"`
	LPIterations int64           `json:"lp_iterations"`
	SolvingTime  string          `json:"solving_time"`
	Solutions    int             `json:"solutions"`
	Values       []VariableValue `json:"values,omitempty"`
}

// VariableValue is one non-zero entry of the best solution.
type VariableValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// zeroTol hides values that are zero up to solver tolerance.
const zeroTol = 1e-9

// NewReport summarizes a solved model.
func NewReport(problem string, m *scip.SolvedModel) *Report {
	r := &Report{
		Problem:      problem,
		Status:       m.Status().String(),
		Nodes:        m.NNodes(),
		LPIterations: m.NLPIterations(),
		SolvingTime:  m.SolvingTime().String(),
		Solutions:    m.NSols(),
	}
	sol := m.BestSol()
	if sol == nil {
		return r
	}
	obj := m.ObjVal()
	r.Objective = &obj
	for _, v := range m.Vars() {
		if val := sol.Val(v); math.Abs(val) > zeroTol {
			r.Values = append(r.Values, VariableValue{Name: v.Name(), Value: val})
		}
	}
	return r
}

// Write renders the report in format ("text" or "json").
func (r *Report) Write(w io.Writer, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	return r.writeText(w)
}

func (r *Report) writeText(w io.Writer) error {
	objective := "-"
	if r.Objective != nil {
		objective = fmt.Sprintf("%g", *r.Objective)
	}
	rows := [][2]string{
		{"problem", r.Problem},
		{"status", r.Status},
		{"objective", objective},
		{"nodes", fmt.Sprint(r.Nodes)},
		{"lp iterations", fmt.Sprint(r.LPIterations)},
		{"solving time", r.SolvingTime},
		{"solutions", fmt.Sprint(r.Solutions)},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%-14s%s\n", row[0], row[1]); err != nil {
			return err
		}
	}
	if len(r.Values) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for _, v := range r.Values {
		if _, err := fmt.Fprintf(w, "%s = %g\n", v.Name, v.Value); err != nil {
			return err
		}
	}
	return nil
}
