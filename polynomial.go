/*
Package polynomial implements integer-coefficient univariate polynomial
arithmetic over a dense, slice-backed representation. It provides construction
from a single term, accessors for the degree and coefficients, and pure
value-producing operators: addition, subtraction, negation, multiplication and
a zero test.

Polynomials are immutable once constructed: every operator allocates and
returns a fresh instance and leaves its operands unchanged, so a single
instance can safely be shared across goroutines without synchronization.
*/
package polynomial

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the error kind returned (or, for documented
// preconditions, panicked) when an operation receives a nil operand or a
// negative exponent. Use [errors.Is] to test for it.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrInvariantViolation signals that an internal consistency check failed
// after an operation built a new instance. It can only arise from a defect in
// the arithmetic routines themselves, never from caller input, and is
// therefore always raised as a panic rather than returned.
var ErrInvariantViolation = errors.New("structural invariant violated")

// Polynomial is the capability contract implemented by every polynomial
// representation. The binary operators consume the operand only through
// Degree and Coeff, so implementations with different representations (for
// example a sparse, map-backed one) interoperate freely.
type Polynomial interface {
	// Degree returns the largest exponent with a non-zero coefficient,
	// or 0 for the zero polynomial.
	Degree() int

	// MinExponent returns the smallest exponent with a non-zero
	// coefficient, or 0 for the zero polynomial.
	MinExponent() int

	// Coeff returns the coefficient of x^d, or 0 if the polynomial has no
	// term with exponent d. Querying beyond the degree is not an error.
	// Coeff panics with an [ErrInvalidArgument]-wrapped error if d is
	// negative.
	Coeff(d int) int

	// IsZero returns true iff the polynomial is the additive identity.
	IsZero() bool

	// Add returns the sum of the receiver and q. Neither is modified.
	// Returns an [ErrInvalidArgument]-wrapped error if q is nil.
	Add(q Polynomial) (Polynomial, error)

	// Subtract returns the receiver minus q. Neither is modified.
	// Returns an [ErrInvalidArgument]-wrapped error if q is nil.
	Subtract(q Polynomial) (Polynomial, error)

	// Multiply returns the product of the receiver and q. Neither is
	// modified. Returns an [ErrInvalidArgument]-wrapped error if q is nil.
	Multiply(q Polynomial) (Polynomial, error)

	// Minus returns the negation of the receiver. The receiver is not
	// modified.
	Minus() Polynomial

	// WellFormed reports whether the structural invariant holds: the
	// coefficient storage spans exactly degree+1 slots. It is checked
	// internally after every operation that builds a new instance and is
	// exposed for external verification.
	WellFormed() bool

	// Stringer renders the canonical human-readable form: "0" for the
	// zero polynomial, otherwise the non-zero terms from highest to
	// lowest exponent. Diagnostic only, never used for equality.
	fmt.Stringer
}
