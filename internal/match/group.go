package match

// Groups is a listing split by status
type Groups struct {
	Live     []LiveMatch
	Upcoming []UpcomingMatch
}

// Group partitions matches into live and upcoming, keeping page order within
// each group. Both slices are non-nil.
func Group(matches []Match) Groups {
	groups := Groups{
		Live:     make([]LiveMatch, 0),
		Upcoming: make([]UpcomingMatch, 0),
	}

	for _, m := range matches {
		switch v := m.(type) {
		case LiveMatch:
			groups.Live = append(groups.Live, v)
		case UpcomingMatch:
			groups.Upcoming = append(groups.Upcoming, v)
		}
	}

	return groups
}

// Len returns the total number of matches in both groups
func (g Groups) Len() int {
	return len(g.Live) + len(g.Upcoming)
}
