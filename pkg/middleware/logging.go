// Package middleware contains service middlewares for descstats.
// This package includes logging middleware that wraps the statistics service
// to provide execution time logging and method call tracing for debugging and
// monitoring purposes.
package middleware

import (
	"context"
	"time"

	"github.com/hyp3rd/descstats"
)

// Logger describes a logging interface allowing to implement different external, or custom logger.
// Tested with logrus, and Uber's Zap (high-performance), but should work with any other logger that matches the interface.
type Logger interface {
	Printf(format string, v ...any)
}

// LoggingMiddleware is a middleware that logs the time it takes to execute the next middleware.
// Must implement the descstats.Service interface.
type LoggingMiddleware struct {
	next   descstats.Service
	logger Logger
}

// NewLoggingMiddleware returns a new LoggingMiddleware.
func NewLoggingMiddleware(next descstats.Service, logger Logger) descstats.Service {
	return &LoggingMiddleware{next: next, logger: logger}
}

// Mean logs the time it takes to execute the next middleware.
func (mw LoggingMiddleware) Mean(ctx context.Context, sample []float64) (float64, error) {
	defer func(begin time.Time) {
		mw.logger.Printf("method Mean took: %s", time.Since(begin))
	}(time.Now())

	mw.logger.Printf("Mean method invoked with sample of %d elements", len(sample))

	return mw.next.Mean(ctx, sample)
}

// StdDev logs the time it takes to execute the next middleware.
func (mw LoggingMiddleware) StdDev(ctx context.Context, sample []float64) (float64, error) {
	defer func(begin time.Time) {
		mw.logger.Printf("method StdDev took: %s", time.Since(begin))
	}(time.Now())

	mw.logger.Printf("StdDev method invoked with sample of %d elements", len(sample))

	return mw.next.StdDev(ctx, sample)
}

// Median logs the time it takes to execute the next middleware.
func (mw LoggingMiddleware) Median(ctx context.Context, sample []float64) (float64, error) {
	defer func(begin time.Time) {
		mw.logger.Printf("method Median took: %s", time.Since(begin))
	}(time.Now())

	mw.logger.Printf("Median method invoked with sample of %d elements", len(sample))

	return mw.next.Median(ctx, sample)
}

// L2 logs the time it takes to execute the next middleware.
func (mw LoggingMiddleware) L2(ctx context.Context, sample []float64) (float64, error) {
	defer func(begin time.Time) {
		mw.logger.Printf("method L2 took: %s", time.Since(begin))
	}(time.Now())

	mw.logger.Printf("L2 method invoked with sample of %d elements", len(sample))

	return mw.next.L2(ctx, sample)
}

// SummationPower logs the time it takes to execute the next middleware.
func (mw LoggingMiddleware) SummationPower(ctx context.Context, sample []float64, offset float64) float64 {
	defer func(begin time.Time) {
		mw.logger.Printf("method SummationPower took: %s", time.Since(begin))
	}(time.Now())

	mw.logger.Printf("SummationPower method invoked with sample of %d elements and offset: %f", len(sample), offset)

	return mw.next.SummationPower(ctx, sample, offset)
}
