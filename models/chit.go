package models

import "time"

// Chit tags
const (
	ChitTagGeneral  = "General"
	ChitTagQuestion = "Question"
	ChitTagReply    = "Reply"
)

// RecipientChair is the sentinel recipient resolving to the current chair
const RecipientChair = "chair"

// Chit is a private note between two participants. Storage is viewer-agnostic;
// visibility is decided at read time by VisibleTo.
type Chit struct {
	ID          string    `bson:"_id" json:"id"`
	FromUserID  string    `bson:"fromUserId" json:"fromUserId"`
	ToUserID    string    `bson:"toUserId" json:"toUserId"`
	FromCountry string    `bson:"fromCountry" json:"fromCountry"`
	ToCountry   string    `bson:"toCountry" json:"toCountry"`
	Message     string    `bson:"message" json:"message"`
	IsViaEb     bool      `bson:"isViaEb" json:"isViaEb"`
	Tag         string    `bson:"tag" json:"tag"`
	Timestamp   time.Time `bson:"timestamp" json:"timestamp"`
}

// VisibleTo reports whether the viewer may read this chit: sender, recipient,
// or the chair when the chit was sent via the Executive Board.
func (c Chit) VisibleTo(viewerID, viewerRole string) bool {
	if viewerID == "" {
		return false
	}
	if c.FromUserID == viewerID || c.ToUserID == viewerID {
		return true
	}
	return c.IsViaEb && viewerRole == RoleChair
}

// ValidChitTag reports whether t is an enumerated chit tag
func ValidChitTag(t string) bool {
	switch t {
	case ChitTagGeneral, ChitTagQuestion, ChitTagReply:
		return true
	}
	return false
}
