package match

import "encoding/json"

// Status identifies which variant a Match is
type Status string

const (
	StatusLive     Status = "live"
	StatusUpcoming Status = "upcoming"
)

// Team is one side of a match
type Team struct {
	Name string `json:"name"`
}

// Event is the tournament a match belongs to
type Event struct {
	Name   string `json:"name"`
	Series string `json:"series"`
}

// Base holds the fields shared by every match entry
type Base struct {
	Team1 Team   `json:"team1"`
	Team2 Team   `json:"team2"`
	Time  string `json:"time"`
	Event Event  `json:"event"`
}

// Match is implemented only by LiveMatch and UpcomingMatch.
type Match interface {
	Status() Status
	Info() Base
	isMatch()
}

// LiveMatch is a match in progress
type LiveMatch struct {
	Base
	Team1Score Score
	Team2Score Score
}

// UpcomingMatch is a scheduled match that has not started
type UpcomingMatch struct {
	Base
	UpcomingTime string
}

// Status returns StatusLive
func (LiveMatch) Status() Status { return StatusLive }

// Info returns the shared match fields
func (m LiveMatch) Info() Base { return m.Base }

func (LiveMatch) isMatch() {}

// Status returns StatusUpcoming
func (UpcomingMatch) Status() Status { return StatusUpcoming }

// Info returns the shared match fields
func (m UpcomingMatch) Info() Base { return m.Base }

func (UpcomingMatch) isMatch() {}

type liveTeamJSON struct {
	Name  string `json:"name"`
	Score Score  `json:"score"`
}

// MarshalJSON flattens the scores into the team objects and adds the status tag.
func (m LiveMatch) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Status Status       `json:"status"`
		Team1  liveTeamJSON `json:"team1"`
		Team2  liveTeamJSON `json:"team2"`
		Time   string       `json:"time"`
		Event  Event        `json:"event"`
	}{
		Status: StatusLive,
		Team1:  liveTeamJSON{Name: m.Team1.Name, Score: m.Team1Score},
		Team2:  liveTeamJSON{Name: m.Team2.Name, Score: m.Team2Score},
		Time:   m.Time,
		Event:  m.Event,
	})
}

// MarshalJSON adds the status tag.
func (m UpcomingMatch) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Status Status `json:"status"`
		Base
		UpcomingTime string `json:"upcomingTime"`
	}{
		Status:       StatusUpcoming,
		Base:         m.Base,
		UpcomingTime: m.UpcomingTime,
	})
}
