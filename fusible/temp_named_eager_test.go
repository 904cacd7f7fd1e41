//go:build fusible_no_fuse_temp && !fusible_fuse_named

package fusible

import (
	"testing"

	"github.com/cwbudde/algo-fusible/internal/testutil"
)

func TestMulTempFollowsNamedPolicy(t *testing.T) {
	a, b := float32(0.3), float32(0.7)
	c := a * b

	testutil.RequireIdentical(t, New(a).MulTemp(b)-c, 0, "fa*+b - c")
	testutil.RequireIdentical(t, TempMul(a, New(b))-c, 0, "+a*fb - c")
}
