package nativetest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/bartolsthoorn/goscip/internal/native"
)

// Problem is the YAML problem format ReadProb understands and
// WriteOrigProblem produces with extension "yaml". An optional solve
// section becomes the engine's Script.
//
//	name: simple
//	sense: maximize
//	vars:
//	  - {name: x1, lb: 0, ub: .inf, obj: 3, type: integer}
//	conss:
//	  - {name: c1, lhs: -.inf, rhs: 100, vars: [x1], coefs: [2]}
//	  - {name: pick, setppc: partitioning, vars: [y1, y2]}
type Problem struct {
	Name  string        `yaml:"name"`
	Sense string        `yaml:"sense,omitempty"`
	Vars  []ProblemVar  `yaml:"vars"`
	Conss []ProblemCons `yaml:"conss,omitempty"`
	Solve *Script       `yaml:"solve,omitempty"`
}

// ProblemVar is one variable of a Problem.
type ProblemVar struct {
	Name string  `yaml:"name"`
	LB   float64 `yaml:"lb"`
	UB   float64 `yaml:"ub"`
	Obj  float64 `yaml:"obj"`
	Type string  `yaml:"type"`
}

// ProblemCons is one constraint of a Problem. Setppc selects a set
// partitioning, packing or covering constraint; otherwise it is linear.
type ProblemCons struct {
	Name   string    `yaml:"name"`
	Setppc string    `yaml:"setppc,omitempty"`
	LHS    float64   `yaml:"lhs,omitempty"`
	RHS    float64   `yaml:"rhs,omitempty"`
	Vars   []string  `yaml:"vars"`
	Coefs  []float64 `yaml:"coefs,omitempty"`
}

var varTypeNames = map[string]native.VarType{
	"binary":     native.VarTypeBinary,
	"integer":    native.VarTypeInteger,
	"implint":    native.VarTypeImplInt,
	"continuous": native.VarTypeContinuous,
}

var setppcNames = map[string]native.SetppcType{
	"partitioning": native.SetppcPartitioning,
	"packing":      native.SetppcPacking,
	"covering":     native.SetppcCovering,
}

func nameOf[T comparable](names map[string]T, v T) string {
	for name, x := range names {
		if x == v {
			return name
		}
	}
	return ""
}

// ParseProblem decodes a Problem. Unknown keys are rejected.
func ParseProblem(data []byte) (*Problem, error) {
	var p Problem
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ReadProb loads a Problem file. Like SCIP's readers it leaves every
// object referenced by the problem only.
func (e *Engine) ReadProb(filename string) native.Retcode {
	if rc, ok := e.fail("ReadProb"); ok {
		return rc
	}
	if e.stage != native.StageInit {
		return native.RetcodeInvalidCall
	}
	if !e.plugins {
		return native.RetcodePluginNotFound
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return native.RetcodeNoFile
	}
	p, err := ParseProblem(data)
	if err != nil {
		return native.RetcodeReadError
	}
	if rc := e.load(p); rc != native.RetcodeOkay {
		return rc
	}
	return native.RetcodeOkay
}

func (e *Engine) load(p *Problem) native.Retcode {
	e.probName = p.Name
	e.stage = native.StageProblem
	switch p.Sense {
	case "", "minimize":
		e.sense = native.ObjSenseMinimize
	case "maximize":
		e.sense = native.ObjSenseMaximize
	default:
		return native.RetcodeReadError
	}

	byName := make(map[string]native.VarPtr, len(p.Vars))
	for _, pv := range p.Vars {
		vt, ok := varTypeNames[pv.Type]
		if !ok {
			return native.RetcodeReadError
		}
		v := e.newVar(pv.Name, pv.LB, pv.UB, pv.Obj, vt)
		v.inProblem = true
		byName[pv.Name] = v.ptr
	}
	for _, pc := range p.Conss {
		vars := make([]native.VarPtr, len(pc.Vars))
		for i, name := range pc.Vars {
			ptr, ok := byName[name]
			if !ok {
				return native.RetcodeReadError
			}
			vars[i] = ptr
		}
		c := e.newCons(pc.Name)
		c.vars = vars
		c.inProblem = true
		if pc.Setppc != "" {
			kind, ok := setppcNames[pc.Setppc]
			if !ok {
				return native.RetcodeReadError
			}
			c.setppc = kind
			continue
		}
		if len(pc.Coefs) != len(vars) {
			return native.RetcodeReadError
		}
		c.linear = true
		c.coefs = append([]float64(nil), pc.Coefs...)
		c.lhs, c.rhs = pc.LHS, pc.RHS
	}
	if p.Solve != nil {
		e.Script = *p.Solve
	}
	return native.RetcodeOkay
}

// WriteOrigProblem writes the original problem. Only the "yaml" format
// has a writer.
func (e *Engine) WriteOrigProblem(filename, extension string) native.Retcode {
	if rc, ok := e.fail("WriteOrigProblem"); ok {
		return rc
	}
	if e.stage < native.StageProblem || e.stage > native.StageExitSolve {
		return native.RetcodeInvalidCall
	}
	if extension == "" {
		extension = filepath.Ext(filename)
		if extension != "" {
			extension = extension[1:]
		}
	}
	if extension != "yaml" {
		return native.RetcodePluginNotFound
	}
	data, err := yaml.Marshal(e.problem())
	if err != nil {
		return native.RetcodeWriteError
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return native.RetcodeFileCreateError
	}
	return native.RetcodeOkay
}

func (e *Engine) problem() *Problem {
	p := &Problem{Name: e.probName, Sense: "minimize"}
	if e.sense == native.ObjSenseMaximize {
		p.Sense = "maximize"
	}
	for _, ptr := range e.OrigVars() {
		v := e.varByPtr[ptr]
		p.Vars = append(p.Vars, ProblemVar{
			Name: v.name, LB: v.lb, UB: v.ub, Obj: v.obj,
			Type: nameOf(varTypeNames, v.vartype),
		})
	}
	for _, ptr := range e.OrigConss() {
		c := e.consByPtr[ptr]
		pc := ProblemCons{Name: c.name}
		for _, v := range c.vars {
			pc.Vars = append(pc.Vars, e.varByPtr[v].name)
		}
		if c.linear {
			pc.LHS, pc.RHS = c.lhs, c.rhs
			pc.Coefs = append([]float64(nil), c.coefs...)
		} else {
			pc.Setppc = nameOf(setppcNames, c.setppc)
		}
		p.Conss = append(p.Conss, pc)
	}
	return p
}

// String renders the original problem in the Problem format.
func (e *Engine) String() string {
	data, err := yaml.Marshal(e.problem())
	if err != nil {
		return fmt.Sprintf("nativetest: %v", err)
	}
	return string(data)
}
