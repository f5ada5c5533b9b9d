package join_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectro/spectro/join"
	"github.com/cwbudde/algo-spectro/spectro/signal"
)

func ExampleJoin() {
	axA, _ := signal.NewUniformAxis(0, 1, 11, signal.Nanometre)
	axB, _ := signal.NewUniformAxis(8, 1, 11, signal.Nanometre)

	dataA := make([]float64, 11)
	dataB := make([]float64, 11)
	for i := range dataA {
		dataA[i] = 10
		dataB[i] = 20 // same emission, twice the gain
	}

	a, _ := signal.NewSpectrum(axA, dataA)
	b, _ := signal.NewSpectrum(axB, dataB)

	out, _ := join.Join([]signal.Signal{a, b})

	ax := out.Axis()
	data := out.Data()
	fmt.Printf("%d samples on [%g, %g] %s\n", ax.Len(), ax.Min(), ax.Max(), ax.Unit())
	fmt.Printf("first %.1f last %.1f\n", data[0], data[len(data)-1])
	// Output:
	// 19 samples on [0, 18] nm
	// first 10.0 last 10.0
}
