// Package attrs provides reusable OpenTelemetry attribute key constants
// to avoid duplication across middlewares.
package attrs

const (
	// AttrSampleLength is the telemetry attribute key for the number of
	// elements in the sample a statistic is computed over.
	AttrSampleLength = "sample.len"
	// AttrOffset is the telemetry attribute key for the offset passed to the
	// squared-deviation reduction.
	AttrOffset = "offset"
	// AttrDefined is the telemetry attribute key recording whether the
	// statistic was defined for the given sample.
	AttrDefined = "defined"
)
