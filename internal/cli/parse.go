package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hupe1980/vecmath"
)

// operands holds the parsed vector arguments of a command. Exactly one of the
// slices is set: complex input is detected when any component has an imaginary
// part.
type operands struct {
	real []*vecmath.Vector[float64]
	cplx []*vecmath.Vector[complex128]
}

func (o operands) isComplex() bool { return o.cplx != nil }

func splitComponents(s string) []string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == ';' || r == '\t'
	})
}

// parseReal parses "1,2,3" or "[1 2 3]" into a float64 vector.
func parseReal(s string) (*vecmath.Vector[float64], error) {
	fields := splitComponents(s)
	v := vecmath.NewVector[float64](len(fields))
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("component %d of %q: %w", i, s, err)
		}
		v.Set(i, x)
	}
	return v, nil
}

// parseComplex parses components such as "1+2i" or "3i" into a complex128 vector.
func parseComplex(s string) (*vecmath.Vector[complex128], error) {
	fields := splitComponents(s)
	v := vecmath.NewVector[complex128](len(fields))
	for i, f := range fields {
		x, err := strconv.ParseComplex(f, 128)
		if err != nil {
			return nil, fmt.Errorf("component %d of %q: %w", i, s, err)
		}
		v.Set(i, x)
	}
	return v, nil
}

// looksComplex reports whether a component carries an imaginary unit suffix.
// "Inf" and "Infinity" contain an i but never end in one.
func looksComplex(s string) bool {
	for _, f := range splitComponents(s) {
		f = strings.TrimSuffix(strings.ToLower(f), ")")
		if strings.HasSuffix(f, "i") {
			return true
		}
	}
	return false
}

func parseOperands(args []string) (operands, error) {
	complexInput := false
	for _, a := range args {
		if looksComplex(a) {
			complexInput = true
			break
		}
	}

	var ops operands
	for _, a := range args {
		if complexInput {
			v, err := parseComplex(a)
			if err != nil {
				return operands{}, err
			}
			ops.cplx = append(ops.cplx, v)
			continue
		}
		v, err := parseReal(a)
		if err != nil {
			return operands{}, err
		}
		ops.real = append(ops.real, v)
	}
	return ops, nil
}

func parseRealOperands(args []string) ([]*vecmath.Vector[float64], error) {
	ops, err := parseOperands(args)
	if err != nil {
		return nil, err
	}
	if ops.isComplex() {
		return nil, fmt.Errorf("operation requires real vectors: %w", vecmath.ErrTypeNotConvertible)
	}
	return ops.real, nil
}
