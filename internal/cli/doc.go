// Package cli implements the command-line interface for vlr-matches.
//
// The cli package provides the Cobra-based CLI: "run" performs a single
// invocation and prints its response, "schedule" repeats the invocation on a
// cron schedule until interrupted, and "matches" prints the parsed listing
// (text or JSON) without sending anything.
package cli
