// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs batches of independent jobs with bounded
// concurrency.
package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Job is one unit of work. Jobs report their own outcome; the pool only
// schedules them.
type Job func(ctx context.Context)

// Pool runs jobs on at most Size goroutines at a time.
type Pool struct {
	size int
}

// NewPool returns a pool of the given size. Sizes below one are treated as
// one.
func NewPool(size int) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{size: size}
}

// Size returns the maximum number of concurrently running jobs.
func (p *Pool) Size() int {
	return p.size
}

// Run executes jobs and waits for every started job to return. Once ctx is
// cancelled no further job is started and Run returns ctx.Err(); jobs that
// are already running see the cancelled ctx.
func (p *Pool) Run(ctx context.Context, jobs []Job) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.size)

	for _, job := range jobs {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			job(gctx)
			return nil
		})
	}

	_ = g.Wait()

	return ctx.Err()
}
