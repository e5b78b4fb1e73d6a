package scip

// ModelRef is a non-owning reference to a model, for plugins that need to
// look at or extend the model that is solving them.
//
// SCIP calls plugins from inside Solve, while the model is in use by that
// call. A ModelRef lets a plugin reach it anyway. The holder must not use
// the reference after the model is closed and must not call Solve or Close
// through it.
type ModelRef[T any] struct {
	inner *T
}

// NewModelRef returns a reference to m.
func NewModelRef[T any](m *T) ModelRef[T] {
	return ModelRef[T]{inner: m}
}

// Get returns the referenced model. It panics on a zero ModelRef.
func (r ModelRef[T]) Get() *T {
	if r.inner == nil {
		panic("scip: ModelRef is not set")
	}
	return r.inner
}
