package units_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectro/spectro/units"
)

func ExampleNmToEV() {
	ev, _ := units.NmToEV(500)
	fmt.Printf("%.4f\n", ev)
	// Output:
	// 2.4790
}

func ExampleNmToInvCm() {
	k, _ := units.NmToInvCm(500)
	fmt.Printf("%.1f\n", k)
	// Output:
	// 20000.0
}

func ExampleNmToEVSlice() {
	wl := []float64{400, 500, -1}
	ev := make([]float64, len(wl))
	units.NmToEVSlice(ev, wl)
	fmt.Printf("%.4f %.4f %v\n", ev[0], ev[1], ev[2])
	// Output:
	// 3.0987 2.4790 NaN
}
