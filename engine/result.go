// SPDX-License-Identifier: MIT

package engine

import "encoding/json"

// Failure is the wire form of a failed operation.
type Failure struct {
	Error string `json:"error" yaml:"error"`
	Kind  Kind   `json:"kind" yaml:"kind"`
}

// Result is the envelope returned by Engine.Do. Exactly one of Payload and
// Err is set.
type Result struct {
	Operation string
	Payload   any
	Err       error
}

// Failed builds a failure envelope for op.
func Failed(op string, err error) Result { return Result{Operation: op, Err: err} }

// OK reports whether the operation succeeded.
func (r Result) OK() bool { return r.Err == nil }

// Kind classifies the failure; "" on success.
func (r Result) Kind() Kind { return Classify(r.Err) }

// Wire returns the value that gets serialised: the payload or a Failure.
func (r Result) Wire() any {
	if r.Err != nil {
		return Failure{Error: r.Err.Error(), Kind: r.Kind()}
	}

	return r.Payload
}

// MarshalJSON encodes the wire form.
func (r Result) MarshalJSON() ([]byte, error) { return json.Marshal(r.Wire()) }

// MarshalYAML lets gopkg.in/yaml.v3 encode the wire form.
func (r Result) MarshalYAML() (any, error) { return r.Wire(), nil }
