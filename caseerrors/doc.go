// Package caseerrors provides structured error types for the namingcase library.
//
// Import path: github.com/erraggy/namingcase/caseerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As].
// Classification itself never fails: an unrecognized identifier is tagged
// invalid instead. Errors only surface when an invalid identifier is asked to
// be decomposed or converted, or when a caller supplies bad configuration.
//
// # Error Types
//
//   - [ExtractionError]: words cannot be extracted from an unrecognized format
//   - [ConversionError]: an identifier cannot be converted to the requested case
//   - [ResourceLimitError]: a request exceeds a configured limit (batch size, length)
//   - [ConfigError]: invalid configuration, flag values, or case names
//
// # Sentinel Errors
//
//   - [ErrExtraction]: Matches any [ExtractionError]
//   - [ErrConversion]: Matches any [ConversionError]
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
//	out, err := naming.Classify("foo@bar").ToSnake()
//	if errors.Is(err, caseerrors.ErrConversion) {
//	    // The identifier was not in a recognized format
//	}
//
// A conversion of an invalid identifier wraps the extraction failure, so both
// sentinels match:
//
//	var convErr *caseerrors.ConversionError
//	if errors.As(err, &convErr) && errors.Is(convErr, caseerrors.ErrExtraction) {
//	    fmt.Printf("cannot convert %q\n", convErr.Value)
//	}
package caseerrors
