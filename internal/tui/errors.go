// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Masaki Kondo

package tui

import "strings"

// Transport-level failure markers. Any of these in an error means the
// wordbook API never answered, so the screens show one friendly line
// instead of a raw dial error.
var unreachableMarkers = []string{
	"connection refused",
	"dial tcp",
	"no such host",
	"network is unreachable",
	"i/o timeout",
	"context deadline exceeded",
}

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	lower := strings.ToLower(msg)
	for _, marker := range unreachableMarkers {
		if strings.Contains(lower, marker) {
			return "no network connection or the server is unavailable"
		}
	}

	return msg
}
