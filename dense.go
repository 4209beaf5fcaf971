package polynomial

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pragyabajoria/polynomial/utils"
)

// DensePolynomial is the dense realization of the [Polynomial] contract: a
// slice of coefficients indexed by exponent, with index 0 holding the
// constant term. Instances are always stored in canonical form, meaning the
// slice carries no trailing zero coefficients and the zero polynomial is a
// single zero slot. The degree and minimum exponent are therefore derived
// from the stored coefficients rather than tracked incrementally, which keeps
// them correct independently of the construction path.
type DensePolynomial struct {
	coeffs []int
}

// NewDense creates a polynomial from a single term c*x^exp.
// Returns an [ErrInvalidArgument]-wrapped error if exp is negative.
// A zero coefficient yields the canonical zero polynomial whatever the
// exponent.
func NewDense(c, exp int) (*DensePolynomial, error) {
	if exp < 0 {
		return nil, fmt.Errorf("cannot NewDense: %w: negative exponent %d", ErrInvalidArgument, exp)
	}

	if c == 0 {
		return zero(), nil
	}

	b := newDenseBuilder(exp)
	b.SetCoeff(exp, c)

	return b.Build(), nil
}

// zero returns the canonical zero polynomial.
func zero() *DensePolynomial {
	return &DensePolynomial{coeffs: []int{0}}
}

// Degree returns the largest exponent with a non-zero coefficient, or 0 for
// the zero polynomial. In canonical form this is always len(coeffs)-1.
func (p *DensePolynomial) Degree() int {
	return len(p.coeffs) - 1
}

// MinExponent returns the smallest exponent with a non-zero coefficient, or
// 0 for the zero polynomial.
func (p *DensePolynomial) MinExponent() int {
	for i, c := range p.coeffs {
		if c != 0 {
			return i
		}
	}

	return 0
}

// Coeff returns the coefficient of x^d, or 0 if d exceeds the degree.
// Panics with an [ErrInvalidArgument]-wrapped error if d is negative.
func (p *DensePolynomial) Coeff(d int) int {
	if d < 0 {
		panic(fmt.Errorf("cannot Coeff: %w: negative exponent %d", ErrInvalidArgument, d))
	}

	if d >= len(p.coeffs) {
		return 0
	}

	return p.coeffs[d]
}

// IsZero returns true iff the polynomial is the additive identity.
func (p *DensePolynomial) IsZero() bool {
	return len(p.coeffs) == 1 && p.coeffs[0] == 0
}

// WellFormed reports whether the canonical-form invariant holds: at least one
// coefficient slot, and no trailing zero coefficient unless the polynomial is
// the single-slot zero.
func (p *DensePolynomial) WellFormed() bool {
	n := len(p.coeffs)
	return n >= 1 && (n == 1 || p.coeffs[n-1] != 0)
}

// Add returns the sum of the receiver and q. Neither is modified.
func (p *DensePolynomial) Add(q Polynomial) (Polynomial, error) {
	if q == nil {
		return nil, fmt.Errorf("cannot Add: %w: operand is nil", ErrInvalidArgument)
	}

	bound := utils.Max(p.Degree(), q.Degree())

	b := newDenseBuilder(bound)
	for i := 0; i <= bound; i++ {
		if v := p.Coeff(i) + q.Coeff(i); v != 0 {
			b.SetCoeff(i, v)
		}
	}

	return b.Build(), nil
}

// Subtract returns the receiver minus q. Neither is modified.
func (p *DensePolynomial) Subtract(q Polynomial) (Polynomial, error) {
	if q == nil {
		return nil, fmt.Errorf("cannot Subtract: %w: operand is nil", ErrInvalidArgument)
	}

	bound := utils.Max(p.Degree(), q.Degree())

	b := newDenseBuilder(bound)
	for i := 0; i <= bound; i++ {
		if v := p.Coeff(i) - q.Coeff(i); v != 0 {
			b.SetCoeff(i, v)
		}
	}

	return b.Build(), nil
}

// Multiply returns the product of the receiver and q, computed as the
// schoolbook O(n*m) convolution of the non-zero coefficients. Neither operand
// is modified.
func (p *DensePolynomial) Multiply(q Polynomial) (Polynomial, error) {
	if q == nil {
		return nil, fmt.Errorf("cannot Multiply: %w: operand is nil", ErrInvalidArgument)
	}

	if p.IsZero() || q.IsZero() {
		return zero(), nil
	}

	b := newDenseBuilder(p.Degree() + q.Degree())
	for i, ci := range p.coeffs {
		if ci == 0 {
			continue
		}

		for j := 0; j <= q.Degree(); j++ {
			if cj := q.Coeff(j); cj != 0 {
				b.AddCoeff(i+j, ci*cj)
			}
		}
	}

	return b.Build(), nil
}

// Minus returns the negation of the receiver. The receiver is not modified.
func (p *DensePolynomial) Minus() Polynomial {
	b := newDenseBuilder(p.Degree())
	for i, c := range p.coeffs {
		if c != 0 {
			b.SetCoeff(i, -c)
		}
	}

	return b.Build()
}

// CopyNew returns a deep copy of the receiver.
func (p *DensePolynomial) CopyNew() *DensePolynomial {
	coeffs := make([]int, len(p.coeffs))
	copy(coeffs, p.coeffs)

	return &DensePolynomial{coeffs: coeffs}
}

// Equal reports whether the receiver and q denote the same polynomial, i.e.
// agree on every coefficient. Works across implementations of [Polynomial];
// a nil q is never equal.
func (p *DensePolynomial) Equal(q Polynomial) bool {
	if q == nil {
		return false
	}

	if q, ok := q.(*DensePolynomial); ok {
		return utils.EqualSlice(p.coeffs, q.coeffs)
	}

	if p.Degree() != q.Degree() {
		return false
	}

	for i, c := range p.coeffs {
		if c != q.Coeff(i) {
			return false
		}
	}

	return true
}

// String renders the polynomial in its canonical human-readable form: "0"
// for the zero polynomial, otherwise the non-zero terms from highest to
// lowest exponent. The leading + is suppressed on the first term, a
// coefficient of magnitude 1 is elided for non-constant terms, exponent 1
// drops the ^1 suffix and exponent 0 renders the coefficient alone.
func (p *DensePolynomial) String() string {
	if p.IsZero() {
		return "0"
	}

	var sb strings.Builder
	for i := p.Degree(); i >= 0; i-- {
		c := p.coeffs[i]
		if c == 0 {
			continue
		}

		// Negative coefficients carry their own sign.
		if sb.Len() > 0 && c > 0 {
			sb.WriteByte('+')
		}

		if i == 0 {
			sb.WriteString(strconv.Itoa(c))
			continue
		}

		switch c {
		case 1:
		case -1:
			sb.WriteByte('-')
		default:
			sb.WriteString(strconv.Itoa(c))
		}

		sb.WriteByte('x')
		if i != 1 {
			sb.WriteByte('^')
			sb.WriteString(strconv.Itoa(i))
		}
	}

	return sb.String()
}

// denseBuilder is the mutable accumulator used while constructing the result
// of an operation. It is sized once to a worst-case degree bound, receives
// the result's terms, and releases them as an immutable [DensePolynomial]
// through Build. It is never exposed to callers.
type denseBuilder struct {
	coeffs []int
}

// newDenseBuilder allocates an accumulator able to hold terms up to the given
// degree bound, all slots zero.
func newDenseBuilder(degree int) *denseBuilder {
	return &denseBuilder{coeffs: make([]int, degree+1)}
}

// SetCoeff writes the coefficient of x^exp. The exponent must lie within the
// accumulator's bound and the coefficient must be non-zero: explicit zero
// terms are never materialized into a result.
func (b *denseBuilder) SetCoeff(exp, c int) {
	if exp < 0 || exp >= len(b.coeffs) {
		panic(fmt.Errorf("cannot SetCoeff: %w: exponent %d outside [0, %d]", ErrInvariantViolation, exp, len(b.coeffs)-1))
	}

	if c == 0 {
		panic(fmt.Errorf("cannot SetCoeff: %w: explicit zero coefficient at exponent %d", ErrInvariantViolation, exp))
	}

	b.coeffs[exp] = c
}

// AddCoeff accumulates c into the slot at exp. Unlike SetCoeff the slot may
// pass through or land on zero, which simply leaves the term unset; the
// convolution in Multiply targets the same slot from several (i, j) pairs.
func (b *denseBuilder) AddCoeff(exp, c int) {
	if exp < 0 || exp >= len(b.coeffs) {
		panic(fmt.Errorf("cannot AddCoeff: %w: exponent %d outside [0, %d]", ErrInvariantViolation, exp, len(b.coeffs)-1))
	}

	b.coeffs[exp] += c
}

// Build normalizes the accumulated coefficients to canonical form (trailing
// zeros trimmed, zero polynomial as a single slot) and returns them as an
// immutable polynomial, verifying the structural invariant before release.
func (b *denseBuilder) Build() *DensePolynomial {
	d := len(b.coeffs) - 1
	for d > 0 && b.coeffs[d] == 0 {
		d--
	}

	p := &DensePolynomial{coeffs: b.coeffs[:d+1]}
	if !p.WellFormed() {
		panic(fmt.Errorf("cannot Build: %w", ErrInvariantViolation))
	}

	return p
}
