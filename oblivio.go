// oblivio.go: version and defaults
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package oblivio

const (
	// Version of the oblivio cache library
	Version = "v0.1.0-dev"

	// DefaultCapacity is the capacity used by DefaultConfig
	DefaultCapacity = 1_000
)
