package vecmath

import (
	"errors"
	"fmt"
)

var (
	// ErrSizeMismatch is reported when operand sizes violate a size relationship.
	ErrSizeMismatch = errors.New("size mismatch")

	// ErrWrongDimension is reported when a 2D or 3D operation gets another size.
	ErrWrongDimension = errors.New("wrong dimension")

	// ErrDivisionByZero is reported when a denominator is exactly zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrTypeNotConvertible is reported when an element kind cannot be converted
	// to the target kind under the active conversion policy.
	ErrTypeNotConvertible = errors.New("type not convertible")

	// ErrInvalidArgument is reported for out-of-domain parameters (e.g. p < 1 for a p-norm).
	ErrInvalidArgument = errors.New("invalid argument")
)

// Fault describes a violated vector precondition.
//
// Faults are raised with panic: they are programmer errors, in the same way an
// out-of-range slice index is. Use Catch to turn them into ordinary errors at an
// API boundary. The sentinel can be matched with errors.Is.
type Fault struct {
	Op       string
	Err      error
	Expected int
	Actual   int
	Detail   string
}

func (f *Fault) Error() string {
	msg := "vecmath: " + f.Op + ": " + f.Err.Error()
	switch {
	case f.Detail != "":
		msg += ": " + f.Detail
	case errors.Is(f.Err, ErrSizeMismatch) || errors.Is(f.Err, ErrWrongDimension):
		msg += fmt.Sprintf(": expected %d, got %d", f.Expected, f.Actual)
	}
	return msg
}

func (f *Fault) Unwrap() error { return f.Err }

func fault(op string, err error, detail string) {
	panic(&Fault{Op: op, Err: err, Detail: detail})
}

func sizeFault(op string, err error, expected, actual int) {
	panic(&Fault{Op: op, Err: err, Expected: expected, Actual: actual})
}

// Catch runs fn and returns the Fault it raised, if any. Panics that are not
// faults are propagated unchanged.
func Catch(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		f, ok := r.(*Fault)
		if !ok {
			panic(r)
		}
		defaultLogger().LogFault(f)
		err = f
	}()
	fn()
	return nil
}

func requireSameLen(op string, a, b int) {
	if a != b {
		panic(&Fault{
			Op:       op,
			Err:      ErrSizeMismatch,
			Expected: a,
			Actual:   b,
			Detail:   fmt.Sprintf("sizes of both operands must be equal (%d != %d)", a, b),
		})
	}
}

func requireDim(op string, n, want int) {
	if n != want {
		sizeFault(op, ErrWrongDimension, want, n)
	}
}

func requireFits(op string, capacity, n int) {
	if n > capacity {
		panic(&Fault{
			Op:       op,
			Err:      ErrSizeMismatch,
			Expected: capacity,
			Actual:   n,
			Detail:   fmt.Sprintf("target size %d must be at least the source size %d", capacity, n),
		})
	}
}

func requireNonZero[T Scalar](op string, x T) {
	if x == 0 {
		fault(op, ErrDivisionByZero, "")
	}
}
