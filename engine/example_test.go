// SPDX-License-Identifier: MIT
package engine_test

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/lvlinalg/engine"
)

// ExampleEngine_Do evaluates two requests and prints their envelopes.
func ExampleEngine_Do() {
	e, err := engine.New()
	if err != nil {
		panic(err)
	}

	ok := e.Do(context.Background(), engine.Request{Op: "multiply", MatrixAText: "1 2; 3 4", MatrixBText: "1 0; 0 1"})
	bad := e.Do(context.Background(), engine.Request{Op: "cross", VectorAText: "1 2", VectorBText: "3 4"})

	for _, res := range []engine.Result{ok, bad} {
		b, _ := json.Marshal(res)
		fmt.Println(string(b))
	}
	// Output:
	// {"result":[[1,2],[3,4]]}
	// {"error":"Cross: cross product requires 3D vectors (got 2 and 2): matrix: dimension mismatch","kind":"DimensionError"}
}
