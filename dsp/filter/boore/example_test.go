package boore_test

import (
	"fmt"

	"github.com/cwbudde/algo-seismic/dsp/filter/boore"
)

func ExampleHighPass() {
	acc := []float64{0, 0, 0, 10, -10, 0, 0, 0}
	out, err := boore.HighPass(acc, 100, 0.05)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.3f %.3f\n", out[3], out[4])
	// Output:
	// 9.881 -9.881
}
