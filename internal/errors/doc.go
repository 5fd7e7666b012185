// Package errors provides structured, actionable error messages for Atrium.
//
// Errors carry a code, a category, and optional detail and suggestion text
// so that CLI output and logs can explain what went wrong and how to fix it.
//
// # Error Categories
//
//   - render: failures raised while computing a page's node tree
//   - resource: async data loading failures
//   - publish: static publishing failures (rendering or upload)
//   - config: configuration file and environment errors
//   - cli: command-line usage errors
//
// # Usage
//
//	err := errors.New("A040").
//	    Wrap(uploadErr).
//	    WithSuggestion("Check the bucket name and your AWS credentials")
package errors
