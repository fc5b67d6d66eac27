// Package errors provides structured error types so the CLI can map
// failures to exit codes and log them with context.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInvalidRequest,
//	    "failed to load device profile",
//	    cause,
//	    map[string]any{
//	        "path": path,
//	    },
//	)
//
//	if errors.HasCode(err, errors.ErrCodeNotFound) {
//	    os.Exit(1)
//	}
package errors
