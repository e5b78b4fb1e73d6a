package scip

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/bartolsthoorn/goscip/internal/native"
)

// ParamSet is a batch of SCIP parameters, usually loaded from YAML:
//
//	presolving: aggressive
//	heuristics: off
//	time_limit: 30s
//	hide_output: true
//	ints:
//	  display/verblevel: 0
//	longints:
//	  limits/nodes: 1000
//	reals:
//	  limits/gap: 0.01
//	bools:
//	  lp/presolving: false
//	strings:
//	  visual/vbcfilename: tree.vbc
type ParamSet struct {
	Strings  map[string]string  `yaml:"strings,omitempty"`
	Ints     map[string]int     `yaml:"ints,omitempty"`
	Longints map[string]int64   `yaml:"longints,omitempty"`
	Reals    map[string]float64 `yaml:"reals,omitempty"`
	Bools    map[string]bool    `yaml:"bools,omitempty"`

	Presolving *ParamSetting `yaml:"presolving,omitempty"`
	Separating *ParamSetting `yaml:"separating,omitempty"`
	Heuristics *ParamSetting `yaml:"heuristics,omitempty"`

	TimeLimit  time.Duration `yaml:"time_limit,omitempty"`
	HideOutput bool          `yaml:"hide_output,omitempty"`
}

// LoadParams reads a ParamSet from a YAML file.
func LoadParams(path string) (*ParamSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scip: reading parameter file: %w", err)
	}
	ps, err := ParseParams(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ps, nil
}

// ParseParams parses a ParamSet. Unknown keys are rejected.
func ParseParams(data []byte) (*ParamSet, error) {
	var ps ParamSet
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&ps); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("scip: parsing parameters: %w", err)
	}
	if ps.TimeLimit < 0 {
		return nil, fmt.Errorf("scip: parsing parameters: negative time_limit %s", ps.TimeLimit)
	}
	return &ps, nil
}

// UnmarshalYAML decodes the names produced by String.
func (p *ParamSetting) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	setting, err := ParseParamSetting(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*p = setting
	return nil
}

// MarshalYAML encodes the setting by name.
func (p ParamSetting) MarshalYAML() (any, error) {
	return p.String(), nil
}

// ApplyParams sets every parameter in ps. Emphasis settings go first so
// individual parameters override them. All parameters are tried; the
// returned error joins every failure.
func (m *UnsolvedModel) ApplyParams(ps *ParamSet) (*UnsolvedModel, error) {
	inst := checkLive(m.inst, "unsolved")
	if ps == nil {
		return m, nil
	}
	eng := inst.eng

	var errs error
	if ps.Presolving != nil {
		errs = multierr.Append(errs, newError("SetPresolving", eng.SetPresolving(ps.Presolving.toNative())))
	}
	if ps.Separating != nil {
		errs = multierr.Append(errs, newError("SetSeparating", eng.SetSeparating(ps.Separating.toNative())))
	}
	if ps.Heuristics != nil {
		errs = multierr.Append(errs, newError("SetHeuristics", eng.SetHeuristics(ps.Heuristics.toNative())))
	}
	for _, name := range sortedKeys(ps.Strings) {
		errs = multierr.Append(errs, paramError("SetStringParam", name, eng.SetStringParam(name, ps.Strings[name])))
	}
	for _, name := range sortedKeys(ps.Ints) {
		errs = multierr.Append(errs, paramError("SetIntParam", name, eng.SetIntParam(name, ps.Ints[name])))
	}
	for _, name := range sortedKeys(ps.Longints) {
		errs = multierr.Append(errs, paramError("SetLongintParam", name, eng.SetLongintParam(name, ps.Longints[name])))
	}
	for _, name := range sortedKeys(ps.Reals) {
		errs = multierr.Append(errs, paramError("SetRealParam", name, eng.SetRealParam(name, ps.Reals[name])))
	}
	for _, name := range sortedKeys(ps.Bools) {
		errs = multierr.Append(errs, paramError("SetBoolParam", name, eng.SetBoolParam(name, ps.Bools[name])))
	}
	if ps.TimeLimit > 0 {
		errs = multierr.Append(errs, newError("SetTimeLimit", eng.SetRealParam("limits/time", ps.TimeLimit.Seconds())))
	}
	if ps.HideOutput {
		errs = multierr.Append(errs, newError("HideOutput", eng.SetIntParam("display/verblevel", 0)))
	}

	inst.log.Debug("applied parameters",
		zap.Int("set", ps.len()),
		zap.Int("failed", len(multierr.Errors(errs))),
	)
	return m, errs
}

func (ps *ParamSet) len() int {
	n := len(ps.Strings) + len(ps.Ints) + len(ps.Longints) + len(ps.Reals) + len(ps.Bools)
	for _, s := range []*ParamSetting{ps.Presolving, ps.Separating, ps.Heuristics} {
		if s != nil {
			n++
		}
	}
	if ps.TimeLimit > 0 {
		n++
	}
	if ps.HideOutput {
		n++
	}
	return n
}

func paramError(op, name string, rc native.Retcode) error {
	err := newError(op, rc)
	if err == nil {
		return nil
	}
	e := err.(*Error)
	e.Msg = fmt.Sprintf("parameter %q rejected with retcode %s", name, e.Retcode)
	return e
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
