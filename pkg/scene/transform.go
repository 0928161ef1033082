package scene

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-gl/mathgl/mgl64"
)

// ParseTransform turns a whitespace separated list of op(args) commands into
// a single matrix. Ops are translate(x,y,z), rotateX(deg), rotateY(deg) and
// rotateZ(deg); they apply in the order they are written. Whitespace inside
// the parentheses is ignored. An empty command is the identity.
func ParseTransform(command string) (mgl64.Mat4, error) {
	m := mgl64.Ident4()
	for _, token := range splitOps(command) {
		op, err := parseOp(token)
		if err != nil {
			return mgl64.Ident4(), err
		}
		m = op.Mul4(m)
	}
	return m, nil
}

// splitOps splits command on whitespace outside parentheses
func splitOps(command string) []string {
	var tokens []string
	var current strings.Builder
	depth := 0
	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range command {
		switch {
		case r == '(':
			depth++
		case r == ')':
			depth--
		case unicode.IsSpace(r):
			if depth <= 0 {
				flush()
			}
			continue
		}
		current.WriteRune(r)
	}
	flush()
	return tokens
}

func parseOp(token string) (mgl64.Mat4, error) {
	open := strings.IndexByte(token, '(')
	if open <= 0 || !strings.HasSuffix(token, ")") {
		return mgl64.Mat4{}, fmt.Errorf("%w: %q", ErrMalformedTransform, token)
	}
	name := token[:open]
	args, err := parseArgs(token[open+1 : len(token)-1])
	if err != nil {
		return mgl64.Mat4{}, fmt.Errorf("%w: %q: %v", ErrMalformedTransform, token, err)
	}

	want := 1
	if name == "translate" {
		want = 3
	}
	if len(args) != want {
		return mgl64.Mat4{}, fmt.Errorf("%w: %q takes %d arguments, got %d", ErrMalformedTransform, name, want, len(args))
	}

	switch name {
	case "translate":
		return mgl64.Translate3D(args[0], args[1], args[2]), nil
	case "rotateX":
		return mgl64.HomogRotate3DX(mgl64.DegToRad(args[0])), nil
	case "rotateY":
		return mgl64.HomogRotate3DY(mgl64.DegToRad(args[0])), nil
	case "rotateZ":
		return mgl64.HomogRotate3DZ(mgl64.DegToRad(args[0])), nil
	}
	return mgl64.Mat4{}, fmt.Errorf("%w: unknown op %q", ErrMalformedTransform, name)
}

func parseArgs(list string) ([]float64, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}
	parts := strings.Split(list, ",")
	args := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}
