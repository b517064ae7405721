package fx_test

import (
	"fmt"

	"github.com/iaaaanb/Keyboard/dsp/fx"
)

func ExampleEnvelope_Apply() {
	env, err := fx.NewEnvelope(1000,
		fx.WithAttack(0.1),
		fx.WithDecay(0.1),
		fx.WithSustain(0.5),
		fx.WithRelease(0.2),
	)
	if err != nil {
		fmt.Println("error")
		return
	}

	buf := make([]float64, 1000)
	for i := range buf {
		buf[i] = 1
	}
	if err := env.Apply(buf); err != nil {
		fmt.Println("error")
		return
	}

	fmt.Printf("start=%.1f sustain=%.1f end=%.1f\n", buf[0], buf[500], buf[999])
	// Output:
	// start=0.0 sustain=0.5 end=0.0
}

func ExampleChain() {
	dist, err := fx.NewDistortion(fx.WithDrive(1.5))
	if err != nil {
		fmt.Println("error")
		return
	}
	trem, err := fx.NewTremolo(44100, fx.WithTremoloDepth(0.2))
	if err != nil {
		fmt.Println("error")
		return
	}

	buf := []float64{0.5, 0.5, 0.5, 0.5}
	if err := fx.Chain(buf, trem, dist); err != nil {
		fmt.Println("error")
		return
	}

	fmt.Printf("len=%d\n", len(buf))
	// Output:
	// len=4
}
