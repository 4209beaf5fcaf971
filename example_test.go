package polynomial_test

import (
	"fmt"

	"github.com/pragyabajoria/polynomial"
)

func Example() {
	p, _ := polynomial.NewDense(2, 3)
	q, _ := polynomial.NewDense(3, 2)

	sum, _ := p.Add(q)
	diff, _ := p.Subtract(q)
	prod, _ := p.Multiply(q)

	fmt.Println(sum)
	fmt.Println(diff)
	fmt.Println(prod)
	fmt.Println(sum.Minus())
	// Output:
	// 2x^3+3x^2
	// 2x^3-3x^2
	// 6x^5
	// -2x^3-3x^2
}
