// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Masaki Kondo

// Package client implements the interactive client application runtime.
//
// It wires terminal UI flows, the entity stores, and background session
// upkeep into a single process lifecycle.
package client
