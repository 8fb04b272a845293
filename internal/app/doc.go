// Package app wires the request pipeline together. It resolves the
// ambient configuration, owns the logger, and runs a validated request
// through the transform into the result sink, decoupled from the CLI
// entrypoint that feeds it.
package app
