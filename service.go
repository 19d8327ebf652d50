package descstats

import (
	"context"
)

// Service is the service interface for the statistics operations.
// It enables middleware to be added around the pure package functions, for
// callers that want logging or telemetry at the call boundary. The context is
// carried for the benefit of tracing middleware only; no operation blocks.
type Service interface {
	// Mean returns the arithmetic mean of the sample, 0.0 for an empty sample
	Mean(ctx context.Context, sample []float64) (float64, error)
	// StdDev returns the (n-1)-normalized spread of the sample
	StdDev(ctx context.Context, sample []float64) (float64, error)
	// Median returns the lower-middle element of the sorted sample
	Median(ctx context.Context, sample []float64) (float64, error)
	// L2 returns the Euclidean norm of the sample, 0.0 for an empty sample
	L2(ctx context.Context, sample []float64) (float64, error)
	// SummationPower returns the sum of squared deviations from offset
	SummationPower(ctx context.Context, sample []float64, offset float64) float64
}

// Middleware describes a service middleware.
type Middleware func(Service) Service

// ApplyMiddleware applies middlewares to a service.
func ApplyMiddleware(svc Service, mw ...Middleware) Service {
	// Apply each middleware in the chain
	for _, m := range mw {
		svc = m(svc)
	}
	// Return the decorated service
	return svc
}

// NewService returns a Service backed by the package-level functions.
func NewService() Service {
	return service{}
}

type service struct{}

func (service) Mean(_ context.Context, sample []float64) (float64, error) {
	return Mean(sample)
}

func (service) StdDev(_ context.Context, sample []float64) (float64, error) {
	return StdDev(sample)
}

func (service) Median(_ context.Context, sample []float64) (float64, error) {
	return Median(sample)
}

func (service) L2(_ context.Context, sample []float64) (float64, error) {
	return L2(sample)
}

func (service) SummationPower(_ context.Context, sample []float64, offset float64) float64 {
	return SummationPower(sample, offset)
}
