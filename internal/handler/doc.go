// Package handler runs one invocation: fetch the vlr.gg listing, parse it,
// split it into live and upcoming matches, format both embeds, and send them
// concurrently. Every collaborator is injected so runs can be tested without
// the network.
package handler
