// Command example demonstrates converting fixed-point durations between
// units without touching floating point.
package main

import (
	"fmt"

	"github.com/fry/embedded-time/duration"
)

func main() {
	// A tick counter read off a millisecond timer.
	elapsed := duration.New[duration.Milliseconds](int64(1_234_567))

	fmt.Println("milliseconds:", elapsed)
	fmt.Println("seconds:     ", duration.From[duration.Seconds](elapsed))
	fmt.Println("microseconds:", duration.From[duration.Microseconds](elapsed))

	// Same-unit arithmetic stays within one type; mixing units does not
	// compile until one side is converted.
	deadline := duration.New[duration.Seconds](int64(1_300))
	remaining := deadline.Sub(duration.From[duration.Seconds](elapsed))
	fmt.Println("remaining:   ", remaining)
}
