package scene

import (
	"errors"
	"fmt"
)

// ErrConfiguration is wrapped by every fatal configuration error. A render
// never starts when one of these is returned.
var ErrConfiguration = errors.New("invalid scene configuration")

var (
	ErrMissingCamera = fmt.Errorf("%w: camera is not configured", ErrConfiguration)
	ErrInvalidCamera = fmt.Errorf("%w: camera field of view must be in (0, 180) degrees", ErrConfiguration)
	ErrMissingRoot   = fmt.Errorf("%w: scene graph has no root", ErrConfiguration)
	ErrInvalidPlane  = fmt.Errorf("%w: projection plane must have positive width and height", ErrConfiguration)
)

// Recoverable problems found while compiling a description. They are reported
// as Warnings and the offending entry is skipped.
var (
	ErrUnknownShape       = errors.New("unknown shape tag")
	ErrUnknownMaterial    = errors.New("unknown material tag")
	ErrUnknownTexture     = errors.New("unknown texture tag")
	ErrMalformedTransform = errors.New("malformed transform command")
	ErrLeafWithoutShape   = errors.New("leaf node has no shape tag")
	ErrInvalidNode        = errors.New("invalid node reference")
	ErrLightCountMismatch = errors.New("light count does not match attribute lists")
)

// Warning is a non-fatal compile problem. Node is the scene graph node that
// was skipped, or NoNode for entries outside the graph such as lights.
type Warning struct {
	Node NodeID
	Err  error
}

func (w Warning) Error() string {
	if w.Node == NoNode {
		return w.Err.Error()
	}
	return fmt.Sprintf("node %d: %v", w.Node, w.Err)
}

func (w Warning) Unwrap() error {
	return w.Err
}
