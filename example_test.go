package algodft_test

import (
	"fmt"
	"math"

	algodft "github.com/cwbudde/algo-dft"
)

func ExamplePlan_Iterative() {
	const n = 16

	plan, err := algodft.NewPlan(n)
	if err != nil {
		panic(err)
	}

	src := algodft.NewSequence(n)
	for i := range n {
		src.Real[i] = math.Cos(2 * math.Pi * 2 * float64(i) / n)
	}

	dst := algodft.NewSequence(n)
	if err := plan.Iterative(dst, src); err != nil {
		panic(err)
	}

	for k := range n {
		if math.Abs(dst.Real[k]) > 1e-9 {
			fmt.Printf("bin %d: %.3f\n", k, dst.Real[k])
		}
	}

	// Output:
	// bin 2: 0.500
	// bin 14: 0.500
}

func ExamplePlan_Verify() {
	plan, err := algodft.NewPlan(1024)
	if err != nil {
		panic(err)
	}

	src := algodft.NewSequence(1024)
	for i := range src.Real {
		src.Real[i] = float64(i%7) / 7
		src.Imag[i] = float64(i%5) / 5
	}

	report, err := plan.Verify(src, 0)
	if err != nil {
		panic(err)
	}

	for _, res := range report.Results {
		fmt.Printf("%s pass=%v\n", res.Strategy, res.Pass)
	}

	// Output:
	// recursive pass=true
	// iterative pass=true
}

func ExampleBitReverse() {
	for i := range 8 {
		r, _ := algodft.BitReverse(i, 8)
		fmt.Print(r, " ")
	}

	fmt.Println()

	// Output:
	// 0 4 2 6 1 5 3 7
}
