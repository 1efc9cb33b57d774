package units

import "fmt"

func ExampleToWavelength() {
	wl, _ := ToWavelength(3.5)
	fmt.Printf("%.2f nm\n", wl)
	// Output:
	// 354.24 nm
}

func ExampleToEnergies() {
	e, _ := ToEnergies([]float64{200, 400, 800})
	fmt.Printf("%.3f %.3f %.3f\n", e[0], e[1], e[2])
	// Output:
	// 6.199 3.100 1.550
}
