package trace_test

import (
	"fmt"

	"github.com/katalvlaran/tracedtw/trace"
)

// ExampleCodec shows dense first-seen interning: repeated tokens reuse
// their id, and the codec remembers the widest token for rendering.
func ExampleCodec() {
	codec := trace.NewCodec()

	fmt.Println(codec.TokenToID("mov eax, 1"))
	fmt.Println(codec.TokenToID("ret"))
	fmt.Println(codec.TokenToID("mov eax, 1"))
	fmt.Println(codec.LargestTokenLen())
	// Output:
	// 0
	// 1
	// 0
	// 10
}
