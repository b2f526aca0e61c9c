// SPDX-License-Identifier: MIT

// Command linalg evaluates linear-algebra requests in batch.
//
//	echo '{"op":"rank","matrixText":"1 2; 2 4"}' | linalg eval
//	linalg eval --in requests.ndjson --workers 8 --output yaml --metrics-out -
//	linalg ops
//
// Configuration comes from defaults, an optional --config YAML file,
// LINALG_* environment variables (LINALG_RUNNER_WORKERS=8) and flags, in
// increasing precedence.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "linalg:", err)
		os.Exit(1)
	}
}
