// Package sentinel provides standardized error definitions for the descstats
// library. The package centralizes the error values returned across the
// components so that callers can match them with errors.Is, ensuring
// consistent error handling and messaging throughout the library.
//
// All errors are created using the ewrap package to provide enhanced error
// wrapping and context capabilities.
package sentinel

import (
	"github.com/hyp3rd/ewrap"
)

var (
	// ErrEmptySample is returned when a statistic is undefined for an empty
	// sample. Only the dispersion-based measures (spread and median) report it;
	// the mean and the L2 norm have defined empty-sample conventions instead.
	ErrEmptySample = ewrap.New("statistic undefined for empty sample")

	// ErrInvalidCapacity is returned when an invalid capacity is passed to a collector.
	ErrInvalidCapacity = ewrap.New("capacity cannot be negative")

	// ErrSerializerNotFound is returned when a serializer is not found.
	ErrSerializerNotFound = ewrap.New("serializer not found")

	// ErrParamCannotBeEmpty is returned when a parameter cannot be empty.
	ErrParamCannotBeEmpty = ewrap.New("param cannot be empty")
)
