package core

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrIndexDiverged  = errors.New("direct and ordered indexes diverged")
	ErrOrderViolation = errors.New("ordered index out of order")
)

// Check walks both indexes and reports the first broken invariant: a key or
// value present on one side only, or a traversal that is not strictly
// ascending. It is O(n) and meant for tests and diagnostics.
func (hi *HybridIndex[K, V]) Check() error {
	var (
		prev  K
		first = true
		seen  int
	)
	for k, v := range hi.ordered.All() {
		if !first && k <= prev {
			return fmt.Errorf("%w: key %v follows %v", ErrOrderViolation, k, prev)
		}
		prev, first = k, false

		dv, ok := hi.direct.Get(k)
		if !ok {
			return fmt.Errorf("%w: key %v missing from direct index", ErrIndexDiverged, k)
		}
		if !reflect.DeepEqual(dv, v) {
			return fmt.Errorf("%w: key %v has different values", ErrIndexDiverged, k)
		}
		seen++
	}

	if seen != hi.ordered.Len() {
		return fmt.Errorf("%w: ordered index reports %d records, traversal found %d",
			ErrIndexDiverged, hi.ordered.Len(), seen)
	}
	if seen == hi.direct.Len() {
		return nil
	}

	var err error
	hi.direct.Range(func(k K, _ V) bool {
		if _, ok := hi.ordered.Get(k); !ok {
			err = fmt.Errorf("%w: key %v missing from ordered index", ErrIndexDiverged, k)
			return false
		}
		return true
	})
	if err == nil {
		err = fmt.Errorf("%w: direct index has %d records, ordered index has %d",
			ErrIndexDiverged, hi.direct.Len(), seen)
	}
	return err
}
