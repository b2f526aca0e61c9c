// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlinalg/config"
	"github.com/katalvlaran/lvlinalg/engine"
)

// maxLineBytes bounds one request line (a 512×512 matrix as text fits easily).
const maxLineBytes = 64 << 20

// runner evaluates a batch of NDJSON requests through one engine.
type runner struct {
	eng     *engine.Engine
	workers int
	limiter *rate.Limiter // nil: unlimited
	output  string
	log     logr.Logger
}

// summary counts the outcomes of one batch.
type summary struct {
	Total  int
	Failed int
}

// newRunner builds a runner from the runner section of cfg.
func newRunner(eng *engine.Engine, rc config.Runner, log logr.Logger) *runner {
	r := &runner{eng: eng, workers: rc.Workers, output: rc.Output, log: log}
	if r.workers < 1 {
		r.workers = 1
	}
	if rc.RateLimit > 0 {
		r.limiter = rate.NewLimiter(rate.Limit(rc.RateLimit), max(rc.Burst, 1))
	}

	return r
}

// line is one non-blank input line with its 1-based position.
type line struct {
	no   int
	data []byte
}

// readLines splits in into non-blank lines.
func readLines(in io.Reader) ([]line, error) {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		out []line
		no  int
	)
	for sc.Scan() {
		no++
		b := bytes.TrimSpace(sc.Bytes())
		if len(b) == 0 {
			continue
		}
		out = append(out, line{no: no, data: append([]byte(nil), b...)})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading requests: %w", err)
	}

	return out, nil
}

// decodeRequest parses one request line. Unknown fields are rejected so a
// misspelt operand surfaces as an error instead of a missing operand.
func decodeRequest(l line) (engine.Request, error) {
	var req engine.Request
	dec := json.NewDecoder(bytes.NewReader(l.data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return engine.Request{}, fmt.Errorf("line %d: %w: %v", l.no, engine.ErrMalformedRequest, err)
	}
	if dec.More() {
		return engine.Request{}, fmt.Errorf("line %d: %w: trailing data after request", l.no, engine.ErrMalformedRequest)
	}

	return req, nil
}

// run reads every request from in, evaluates them with at most r.workers in
// flight and writes one envelope per request to out in input order.
//
// Operation failures are envelopes, not errors: run only fails on I/O
// errors or when ctx is cancelled.
func (r *runner) run(ctx context.Context, in io.Reader, out io.Writer) (summary, error) {
	lines, err := readLines(in)
	if err != nil {
		return summary{}, err
	}

	results := make([]engine.Result, len(lines))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, l := range lines {
		if r.limiter != nil {
			if err = r.limiter.Wait(gctx); err != nil {
				break
			}
		}
		i, l := i, l
		g.Go(func() error {
			req, derr := decodeRequest(l)
			if derr != nil {
				results[i] = engine.Failed("", derr)
				return nil
			}
			results[i] = r.eng.Do(gctx, req)
			return nil
		})
	}
	if werr := g.Wait(); err == nil {
		err = werr
	}
	if err != nil {
		return summary{}, fmt.Errorf("evaluating requests: %w", err)
	}

	s := summary{Total: len(results)}
	for _, res := range results {
		if !res.OK() {
			s.Failed++
		}
	}
	if err = r.write(out, results); err != nil {
		return summary{}, err
	}
	r.log.Info("batch evaluated", "requests", s.Total, "failed", s.Failed, "workers", r.workers)

	return s, nil
}

// write encodes results as JSON lines or as a stream of YAML documents.
func (r *runner) write(out io.Writer, results []engine.Result) error {
	switch r.output {
	case config.OutputYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		for _, res := range results {
			if err := enc.Encode(res); err != nil {
				return fmt.Errorf("writing yaml: %w", err)
			}
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(out)
		enc.SetEscapeHTML(false)
		for _, res := range results {
			if err := enc.Encode(res); err != nil {
				return fmt.Errorf("writing json: %w", err)
			}
		}
		return nil
	}
}
