package middleware

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/hyp3rd/descstats"
	"github.com/hyp3rd/descstats/internal/telemetry/attrs"
)

// OTelTracingMiddleware wraps descstats.Service methods with OpenTelemetry spans.
type OTelTracingMiddleware struct {
	next   descstats.Service
	tracer trace.Tracer
	// static attributes applied to all spans
	commonAttrs []attribute.KeyValue
}

// OTelTracingOption allows configuring the tracing middleware.
type OTelTracingOption func(*OTelTracingMiddleware)

// WithCommonAttributes sets attributes applied to all spans.
func WithCommonAttributes(attributes ...attribute.KeyValue) OTelTracingOption {
	return func(m *OTelTracingMiddleware) { m.commonAttrs = append(m.commonAttrs, attributes...) }
}

// NewOTelTracingMiddleware creates a tracing middleware.
func NewOTelTracingMiddleware(next descstats.Service, tracer trace.Tracer, opts ...OTelTracingOption) descstats.Service {
	mw := &OTelTracingMiddleware{next: next, tracer: tracer}
	for _, o := range opts {
		o(mw)
	}

	return mw
}

// Mean implements Service.Mean with tracing.
func (mw OTelTracingMiddleware) Mean(ctx context.Context, sample []float64) (float64, error) {
	ctx, span := mw.startSpan(ctx, "descstats.Mean", attribute.Int(attrs.AttrSampleLength, len(sample)))
	defer span.End()

	v, err := mw.next.Mean(ctx, sample)
	if err != nil {
		span.RecordError(err)
	}

	return v, err
}

// StdDev implements Service.StdDev with tracing.
func (mw OTelTracingMiddleware) StdDev(ctx context.Context, sample []float64) (float64, error) {
	ctx, span := mw.startSpan(ctx, "descstats.StdDev", attribute.Int(attrs.AttrSampleLength, len(sample)))
	defer span.End()

	v, err := mw.next.StdDev(ctx, sample)
	if err != nil {
		span.RecordError(err)
	}

	return v, err
}

// Median implements Service.Median with tracing.
func (mw OTelTracingMiddleware) Median(ctx context.Context, sample []float64) (float64, error) {
	ctx, span := mw.startSpan(ctx, "descstats.Median", attribute.Int(attrs.AttrSampleLength, len(sample)))
	defer span.End()

	v, err := mw.next.Median(ctx, sample)
	if err != nil {
		span.RecordError(err)
	}

	return v, err
}

// L2 implements Service.L2 with tracing.
func (mw OTelTracingMiddleware) L2(ctx context.Context, sample []float64) (float64, error) {
	ctx, span := mw.startSpan(ctx, "descstats.L2", attribute.Int(attrs.AttrSampleLength, len(sample)))
	defer span.End()

	v, err := mw.next.L2(ctx, sample)
	if err != nil {
		span.RecordError(err)
	}

	return v, err
}

// SummationPower implements Service.SummationPower with tracing.
func (mw OTelTracingMiddleware) SummationPower(ctx context.Context, sample []float64, offset float64) float64 {
	ctx, span := mw.startSpan(
		ctx, "descstats.SummationPower",
		attribute.Int(attrs.AttrSampleLength, len(sample)),
		attribute.Float64(attrs.AttrOffset, offset))
	defer span.End()

	return mw.next.SummationPower(ctx, sample, offset)
}

// startSpan starts a span with the common attributes applied.
func (mw OTelTracingMiddleware) startSpan(ctx context.Context, name string, attributes ...attribute.KeyValue) (context.Context, trace.Span) {
	spanAttrs := make([]attribute.KeyValue, 0, len(mw.commonAttrs)+len(attributes))
	spanAttrs = append(spanAttrs, mw.commonAttrs...)
	spanAttrs = append(spanAttrs, attributes...)

	return mw.tracer.Start(ctx, name, trace.WithAttributes(spanAttrs...))
}
