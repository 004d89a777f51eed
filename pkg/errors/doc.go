// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInvalidRequest,
//	    "failed to parse requested version",
//	    parseErr,
//	    map[string]interface{}{
//	        "input": raw,
//	        "param": "candidate",
//	    },
//	)
package errors
