// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/levelup/internal/logger"
)

type tickerWorker struct {
	name     string
	interval time.Duration
	task     func(ctx context.Context)

	logger *logger.Logger
}

// NewTickerWorker returns a [Worker] calling task every interval until the
// context passed to Run is done. A non-positive interval disables the worker.
func NewTickerWorker(name string, interval time.Duration, task func(ctx context.Context), log *logger.Logger) Worker {
	return &tickerWorker{
		name:     name,
		interval: interval,
		task:     task,
		logger:   log.WithComponent(name),
	}
}

func (w *tickerWorker) Run(ctx context.Context) {
	if w.interval <= 0 {
		w.logger.Info().Msg("worker disabled")
		return
	}

	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info().Dur("interval", w.interval).Msg("worker started")
		for {
			select {
			case <-ctx.Done():
				w.logger.Info().Msg("worker stopped")
				return
			case <-ticker.C:
				w.task(ctx)
			}
		}
	}()
}
