// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-access-desk/internal/service"
)

type catalogRefreshWorker struct {
	job      service.CatalogRefreshJob
	interval time.Duration
}

// NewCatalogRefreshWorker runs job every interval. It returns nil when job is
// nil (offline client), which [NewWorkers] skips.
func NewCatalogRefreshWorker(job service.CatalogRefreshJob, interval time.Duration) Worker {
	if job == nil {
		return nil
	}
	return &catalogRefreshWorker{job: job, interval: interval}
}

func (w *catalogRefreshWorker) Run(ctx context.Context) {
	w.job.Start(ctx, w.interval)
}

func (w *catalogRefreshWorker) Stop() {
	w.job.Stop()
}
