// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import "errors"

// Result is the status code returned by every driver entry point.
// Negative values are errors, non-negative values are success codes.
// The numbering follows the external API contract, so a Result can
// be handed across the boundary unchanged.
type Result int32

// Success codes.
const (
	Success    Result = 0
	Incomplete Result = 5
)

// Error codes.
const (
	ErrorOutOfHostMemory      Result = -1
	ErrorOutOfDeviceMemory    Result = -2
	ErrorInitializationFailed Result = -3
	ErrorLayerNotPresent      Result = -6
	ErrorExtensionNotPresent  Result = -7
	ErrorFeatureNotPresent    Result = -8
	ErrorTooManyObjects       Result = -10
)

// Errors produced by Result.Err. Exposed so callers can match
// with errors.Is instead of switching on codes.
var (
	ErrOutOfHostMemory      = errors.New("vkcore: out of host memory")
	ErrOutOfDeviceMemory    = errors.New("vkcore: out of device memory")
	ErrInitializationFailed = errors.New("vkcore: initialization failed")
	ErrLayerNotPresent      = errors.New("vkcore: layer not present")
	ErrExtensionNotPresent  = errors.New("vkcore: extension not present")
	ErrFeatureNotPresent    = errors.New("vkcore: feature not present")
	ErrTooManyObjects       = errors.New("vkcore: too many objects")
	ErrUnknown              = errors.New("vkcore: unknown error")
)

// Err converts an error Result into a Go error. Success codes,
// including Incomplete, convert to nil.
func (r Result) Err() error {
	if r >= 0 {
		return nil
	}
	switch r {
	case ErrorOutOfHostMemory:
		return ErrOutOfHostMemory
	case ErrorOutOfDeviceMemory:
		return ErrOutOfDeviceMemory
	case ErrorInitializationFailed:
		return ErrInitializationFailed
	case ErrorLayerNotPresent:
		return ErrLayerNotPresent
	case ErrorExtensionNotPresent:
		return ErrExtensionNotPresent
	case ErrorFeatureNotPresent:
		return ErrFeatureNotPresent
	case ErrorTooManyObjects:
		return ErrTooManyObjects
	}
	return ErrUnknown
}

func (r Result) String() string {
	switch r {
	case Success:
		return "Success"
	case Incomplete:
		return "Incomplete"
	case ErrorOutOfHostMemory:
		return "ErrorOutOfHostMemory"
	case ErrorOutOfDeviceMemory:
		return "ErrorOutOfDeviceMemory"
	case ErrorInitializationFailed:
		return "ErrorInitializationFailed"
	case ErrorLayerNotPresent:
		return "ErrorLayerNotPresent"
	case ErrorExtensionNotPresent:
		return "ErrorExtensionNotPresent"
	case ErrorFeatureNotPresent:
		return "ErrorFeatureNotPresent"
	case ErrorTooManyObjects:
		return "ErrorTooManyObjects"
	}
	return "Result(unknown)"
}
