package middleware

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/hyp3rd/descstats"
	"github.com/hyp3rd/descstats/internal/telemetry/attrs"
)

// OTelMetricsMiddleware emits OpenTelemetry metrics for service methods.
type OTelMetricsMiddleware struct {
	next  descstats.Service
	meter metric.Meter

	// instruments
	calls     metric.Int64Counter
	durations metric.Float64Histogram
}

// NewOTelMetricsMiddleware constructs a metrics middleware using the provided meter.
func NewOTelMetricsMiddleware(next descstats.Service, meter metric.Meter) (descstats.Service, error) {
	calls, err := meter.Int64Counter("descstats.calls")
	if err != nil {
		return nil, fmt.Errorf("create counter: %w", err)
	}

	durations, err := meter.Float64Histogram("descstats.duration.ms")
	if err != nil {
		return nil, fmt.Errorf("create histogram: %w", err)
	}

	return &OTelMetricsMiddleware{next: next, meter: meter, calls: calls, durations: durations}, nil
}

// Mean implements Service.Mean with metrics.
func (mw *OTelMetricsMiddleware) Mean(ctx context.Context, sample []float64) (float64, error) {
	start := time.Now()
	v, err := mw.next.Mean(ctx, sample)
	mw.rec(ctx, "Mean", start, attribute.Int(attrs.AttrSampleLength, len(sample)), attribute.Bool(attrs.AttrDefined, err == nil))

	return v, err
}

// StdDev implements Service.StdDev with metrics.
func (mw *OTelMetricsMiddleware) StdDev(ctx context.Context, sample []float64) (float64, error) {
	start := time.Now()
	v, err := mw.next.StdDev(ctx, sample)
	mw.rec(ctx, "StdDev", start, attribute.Int(attrs.AttrSampleLength, len(sample)), attribute.Bool(attrs.AttrDefined, err == nil))

	return v, err
}

// Median implements Service.Median with metrics.
func (mw *OTelMetricsMiddleware) Median(ctx context.Context, sample []float64) (float64, error) {
	start := time.Now()
	v, err := mw.next.Median(ctx, sample)
	mw.rec(ctx, "Median", start, attribute.Int(attrs.AttrSampleLength, len(sample)), attribute.Bool(attrs.AttrDefined, err == nil))

	return v, err
}

// L2 implements Service.L2 with metrics.
func (mw *OTelMetricsMiddleware) L2(ctx context.Context, sample []float64) (float64, error) {
	start := time.Now()
	v, err := mw.next.L2(ctx, sample)
	mw.rec(ctx, "L2", start, attribute.Int(attrs.AttrSampleLength, len(sample)), attribute.Bool(attrs.AttrDefined, err == nil))

	return v, err
}

// SummationPower implements Service.SummationPower with metrics.
func (mw *OTelMetricsMiddleware) SummationPower(ctx context.Context, sample []float64, offset float64) float64 {
	start := time.Now()
	v := mw.next.SummationPower(ctx, sample, offset)
	mw.rec(ctx, "SummationPower", start, attribute.Int(attrs.AttrSampleLength, len(sample)), attribute.Float64(attrs.AttrOffset, offset))

	return v
}

// rec records call count and duration with attributes.
func (mw *OTelMetricsMiddleware) rec(ctx context.Context, method string, start time.Time, attributes ...attribute.KeyValue) {
	base := []attribute.KeyValue{attribute.String("method", method)}
	if len(attributes) > 0 {
		base = append(base, attributes...)
	}

	mw.calls.Add(ctx, 1, metric.WithAttributes(base...))
	mw.durations.Record(ctx, float64(time.Since(start).Milliseconds()), metric.WithAttributes(base...))
}
