// Package scipc is the cgo backend of native.Engine. It links against an
// installed SCIP 8 and registers itself as the "scip" driver.
//
// The package is only built with the scip build tag:
//
//	CGO_CFLAGS=-I/opt/scip/include CGO_LDFLAGS=-L/opt/scip/lib go build -tags scip ./...
//
// Plugin callbacks enter Go through small C shims in shim.c. A panic raised
// by a Go callback is recovered at the C boundary, reported to SCIP as
// SCIP_ERROR so SCIP unwinds normally, and raised again once control is
// back in Go.
package scipc
