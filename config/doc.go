// SPDX-License-Identifier: MIT

// Package config holds the runtime configuration of the linalg host.
//
// Sources, lowest to highest precedence:
//
//	defaults (Default) → YAML file → LINALG_* environment → command-line flags
//
// Environment keys are the dotted key upper-cased with "." replaced by "_",
// e.g. LINALG_RUNNER_WORKERS or LINALG_TOLERANCE_SINGULARITY.
package config
