// Package request holds the CipherRequest model and the semantic validator
// that turns raw command-line fields into a request the transform can run.
//
// Validation is a single pass with two outcomes. A Result is either Valid,
// carrying a fully populated CipherRequest, or Rejected, carrying the kind
// of failure and a descriptive error. The source file is read only after
// every other check has passed.
package request
