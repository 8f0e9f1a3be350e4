package assertx

import (
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

// Equal compares with go-cmp instead of reflect in order to support
// additional options like IgnoreFields.
func Equal(t assert.TestingT, expected any, actual any, opts ...cmp.Option) (ok bool) {
	if !cmp.Equal(expected, actual, opts...) {
		t.Errorf("Not equal: \n%s", cmp.Diff(expected, actual, opts...))
		return false
	}

	return true
}
