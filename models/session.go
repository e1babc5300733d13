package models

import "time"

// Session lifecycle states
const (
	StateSetup  = "setup"
	StateDebate = "debate"
	StateVoting = "voting"
	StateClosed = "closed"
)

// Delegate roles
const (
	RoleDelegate = "delegate"
	RoleChair    = "chair"
)

// SessionConfig holds the chair-adjustable committee settings
type SessionConfig struct {
	GslTime int `bson:"gslTime" json:"gslTime"` // default speaking duration in seconds
	ModTime int `bson:"modTime" json:"modTime"` // moderated-caucus speaking duration in seconds
}

// Delegate defines a joined participant of a committee session
type Delegate struct {
	UserID  string `bson:"userId" json:"userId"`
	Country string `bson:"country" json:"country"`
	Role    string `bson:"role" json:"role"`
	Score   int    `bson:"score" json:"score"`
}

// SpeakerEntry is one position on the General Speakers List
type SpeakerEntry struct {
	UserID     string `bson:"userId" json:"userId"`
	Country    string `bson:"country" json:"country"`
	IsSpeaking bool   `bson:"isSpeaking" json:"isSpeaking"`
}

// Session is the authoritative aggregate for one committee instance.
// CurrentSpeechStart is the timer anchor: polling clients derive remaining
// speaking time as gslTime - (now - currentSpeechStart) with their own clock.
type Session struct {
	ID                 string              `bson:"_id" json:"id"`
	State              string              `bson:"state" json:"state"`
	SessionConfig      SessionConfig       `bson:"sessionConfig" json:"sessionConfig"`
	ChairUserID        string              `bson:"chairUserId,omitempty" json:"chairUserId,omitempty"`
	Delegates          map[string]Delegate `bson:"delegates" json:"delegates"`
	SpeakersList       []SpeakerEntry      `bson:"speakersList" json:"speakersList"`
	CurrentSpeechStart *time.Time          `bson:"currentSpeechStart,omitempty" json:"currentSpeechStart,omitempty"`
	ChatLog            []ChatMessage       `bson:"chatLog" json:"chatLog"`
	Chits              []Chit              `bson:"chits" json:"chits"`
	VoteData           *Vote               `bson:"voteData,omitempty" json:"voteData,omitempty"`
	VoteHistory        []Vote              `bson:"voteHistory,omitempty" json:"voteHistory,omitempty"`
}

// ValidState reports whether s is a known session lifecycle state
func ValidState(s string) bool {
	switch s {
	case StateSetup, StateDebate, StateVoting, StateClosed:
		return true
	}
	return false
}

// Clone returns a deep copy of the session so readers never alias live state
func (s *Session) Clone() Session {
	out := *s

	out.Delegates = make(map[string]Delegate, len(s.Delegates))
	for id, d := range s.Delegates {
		out.Delegates[id] = d
	}

	out.SpeakersList = append([]SpeakerEntry(nil), s.SpeakersList...)
	out.ChatLog = append([]ChatMessage(nil), s.ChatLog...)
	out.Chits = append([]Chit(nil), s.Chits...)

	if s.CurrentSpeechStart != nil {
		t := *s.CurrentSpeechStart
		out.CurrentSpeechStart = &t
	}
	if s.VoteData != nil {
		v := s.VoteData.Clone()
		out.VoteData = &v
	}
	out.VoteHistory = make([]Vote, 0, len(s.VoteHistory))
	for _, v := range s.VoteHistory {
		out.VoteHistory = append(out.VoteHistory, v.Clone())
	}

	return out
}
