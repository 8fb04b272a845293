// Package cli is responsible for parsing command-line arguments, enforcing
// the syntactic option rules, and handling process-level concerns like exit
// codes and the usage banner. It translates CLI flags into raw request
// fields and the application's ambient options.
package cli
