// Package match provides types for vlr.gg match listings.
//
// A Match is either a LiveMatch, which carries a running score for each team,
// or an UpcomingMatch, which carries an estimated time until it starts. The
// Match interface is sealed so those are the only two variants. Group splits
// a parsed listing into its live and upcoming halves without reordering.
package match
