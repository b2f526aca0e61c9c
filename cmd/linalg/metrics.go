// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// writeMetrics encodes every family gathered from g in the Prometheus text
// exposition format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range mfs {
		if err = enc.Encode(mf); err != nil {
			return fmt.Errorf("encoding %s: %w", mf.GetName(), err)
		}
	}

	return nil
}

// dumpMetrics writes the registry to path; "-" means stderr.
func dumpMetrics(path string, g prometheus.Gatherer) error {
	if path == "-" {
		return writeMetrics(os.Stderr, g)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("metrics file: %w", err)
	}
	if err = writeMetrics(f, g); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
