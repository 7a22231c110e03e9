package coordmap_test

import (
	"fmt"
	"log"

	"github.com/coordkit/coordmap"
)

func ExampleNewLutMap() {
	// Samples of y = x^2 at x = 0, 1, 2, 3, 4.
	lut, err := coordmap.NewLutMap([]float64{0, 1, 4, 9, 16}, 0, 1, "")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("y = %.2f\n", lut.Eval(1.5))

	x, err := lut.EvalInverse(4)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("x = %.2f\n", x)

	// Output:
	// y = 2.50
	// x = 2.00
}

func ExampleNewWinMap() {
	// Map the window [0, 100] onto [32, 212]: Celsius to Fahrenheit.
	m, err := coordmap.NewWinMap(
		[]float64{0}, []float64{100},
		[]float64{32}, []float64{212},
		"")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%.1f\n", m.Forward(37)[0])

	// Output:
	// 98.6
}

func ExampleApply1() {
	lut, err := coordmap.NewLutMap([]float64{0, 10, 40}, 0, 1, "")
	if err != nil {
		log.Fatal(err)
	}

	ys := coordmap.Apply1(lut, []float64{0.5, 1, 1.5})
	fmt.Printf("%.0f\n", ys)

	// Output:
	// [5 10 25]
}
