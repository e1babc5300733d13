package models

import "time"

// Vote types
const (
	VoteTypeProcedural  = "procedural"
	VoteTypeSubstantive = "substantive"
)

// Vote is one motion put to the floor. Voters records who used their ballot,
// not what they chose; TotalVotes is always derived from it.
type Vote struct {
	Active     bool           `bson:"active" json:"active"`
	Topic      string         `bson:"topic" json:"topic"`
	Type       string         `bson:"type" json:"type"`
	Options    []string       `bson:"options" json:"options"`
	Voters     []string       `bson:"voters" json:"voters"`
	Results    map[string]int `bson:"results" json:"results"`
	TotalVotes int            `bson:"totalVotes" json:"totalVotes"`
	StartedAt  time.Time      `bson:"startedAt" json:"startedAt"`
	EndedAt    *time.Time     `bson:"endedAt,omitempty" json:"endedAt,omitempty"`
}

// HasVoted reports whether the participant already used their ballot
func (v *Vote) HasVoted(userID string) bool {
	for _, id := range v.Voters {
		if id == userID {
			return true
		}
	}
	return false
}

// HasOption reports whether option is one of the configured choices
func (v *Vote) HasOption(option string) bool {
	for _, opt := range v.Options {
		if opt == option {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the vote
func (v Vote) Clone() Vote {
	out := v
	out.Options = append([]string(nil), v.Options...)
	out.Voters = append([]string(nil), v.Voters...)
	out.Results = make(map[string]int, len(v.Results))
	for opt, n := range v.Results {
		out.Results[opt] = n
	}
	if v.EndedAt != nil {
		t := *v.EndedAt
		out.EndedAt = &t
	}
	return out
}

// ValidVoteType reports whether t is an enumerated vote type
func ValidVoteType(t string) bool {
	return t == VoteTypeProcedural || t == VoteTypeSubstantive
}
