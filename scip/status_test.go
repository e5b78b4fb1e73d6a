package scip

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bartolsthoorn/goscip/internal/native"
)

func TestStatusFromNative(t *testing.T) {
	tests := []struct {
		native native.Status
		want   Status
		limit  bool
	}{
		{native.StatusUnknown, StatusUnknown, false},
		{native.StatusUserInterrupt, StatusUserInterrupt, false},
		{native.StatusNodeLimit, StatusNodeLimit, true},
		{native.StatusTotalNodeLimit, StatusTotalNodeLimit, true},
		{native.StatusStallNodeLimit, StatusStallNodeLimit, true},
		{native.StatusTimeLimit, StatusTimeLimit, true},
		{native.StatusMemLimit, StatusMemoryLimit, true},
		{native.StatusGapLimit, StatusGapLimit, true},
		{native.StatusSolLimit, StatusSolutionLimit, true},
		{native.StatusBestSolLimit, StatusBestSolutionLimit, true},
		{native.StatusRestartLimit, StatusRestartLimit, true},
		{native.StatusOptimal, StatusOptimal, false},
		{native.StatusInfeasible, StatusInfeasible, false},
		{native.StatusUnbounded, StatusUnbounded, false},
		{native.StatusInfOrUnbd, StatusInfeasibleOrUnbounded, false},
		{native.StatusTerminate, StatusTerminate, false},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			got := statusFromNative(tt.native)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.limit, got.IsLimit())
			assert.Equal(t, tt.want == StatusOptimal, got.IsOptimal())
		})
	}
	assert.Panics(t, func() { statusFromNative(native.Status(99)) })
	assert.Equal(t, "Unknown", Status(-1).String())
}

func TestRetcodeFromNative(t *testing.T) {
	assert.Len(t, retcodes, int(RetcodeNotImplemented)+1)
	for rc, want := range retcodes {
		assert.Equal(t, want, retcodeFromNative(rc))
		assert.NotEqual(t, "Unknown", want.String())
	}
	assert.Equal(t, RetcodeOkay, retcodeFromNative(native.RetcodeOkay))
	assert.Equal(t, RetcodeMaxDepthLevel, retcodeFromNative(native.RetcodeMaxDepthLevel))
	assert.Panics(t, func() { retcodeFromNative(native.Retcode(5)) })
	assert.Equal(t, "Unknown", Retcode(100).String())
}
