// Package errors provides structured error types for rule resolution.
//
// Every failure this module can produce happens before generated glue runs:
// resolution rejects shapes with no applicable rule or with two applicable
// rules, and the bridge generator turns those rejections into build failures
// of the glue. Errors therefore carry enough structure for generator
// diagnostics: the phase that failed, the failure kind, the Go type
// involved, and the path of container layers leading to the offending shape.
package errors
