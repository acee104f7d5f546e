// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Masaki Kondo

package workers

import (
	"time"

	"github.com/mkondo/go-wordbook/internal/identity"
	"github.com/mkondo/go-wordbook/internal/logger"
)

const defaultKeepAliveInterval = 10 * time.Minute

// TokenKeepAlive periodically asks the identity provider for the current
// token, which refreshes it before expiry. Without the worker the refresh
// happens lazily on the first store call after idle time, adding its latency
// to that call.
type TokenKeepAlive struct {
	provider identity.Provider
	interval time.Duration
	stop     chan struct{}
	logger   *logger.Logger
}

// NewTokenKeepAlive constructs the worker. interval zero means the 10-minute
// default.
func NewTokenKeepAlive(provider identity.Provider, interval time.Duration, log *logger.Logger) *TokenKeepAlive {
	if interval <= 0 {
		interval = defaultKeepAliveInterval
	}

	return &TokenKeepAlive{
		provider: provider,
		interval: interval,
		stop:     make(chan struct{}),
		logger:   log,
	}
}

// Run starts the refresh loop in a goroutine and returns immediately.
func (w *TokenKeepAlive) Run() {
	go w.loop()
}

func (w *TokenKeepAlive) loop() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			// Token refreshes itself when expiry is near. An empty token
			// means no session; nothing to keep alive.
			if w.provider.Token() == "" {
				w.logger.Debug().Msg("keep-alive tick with no active session")
			}
		case <-w.stop:
			return
		}
	}
}

// Stop terminates the refresh loop. Safe to call once.
func (w *TokenKeepAlive) Stop() {
	close(w.stop)
}
