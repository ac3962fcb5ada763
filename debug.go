package affine

import (
	"fmt"
	"io"
	"os"
)

// debugOutput receives [affine] diagnostics. Tests swap it for a buffer.
var debugOutput io.Writer = os.Stderr

// debugHold warns that an animation kept its previous frame because the
// current one could not be interpolated. Only prints when a.Debug is set, and
// only for the first held frame until a frame succeeds or the animation is
// reset.
func (a *Animation) debugHold(err error) {
	if !a.Debug || a.warned {
		return
	}
	a.warned = true
	_, _ = fmt.Fprintf(debugOutput, "[affine] warning: animation %q holding %v: %v\n",
		a.Name, a.current, err)
}
