package models

import "time"

// Floor message kinds. Points and motions are classified for display; the
// chair's moderation of who may raise them is procedural, not enforced here.
const (
	ChatTypeChat       = "chat"
	ChatTypeMotion     = "motion"
	ChatTypePointOrder = "point_order"
	ChatTypePointInfo  = "point_info"
	ChatTypePointPriv  = "point_priv"
	ChatTypeYield      = "yield"
)

// ChatMessage is one immutable entry of the floor feed
type ChatMessage struct {
	ID        string    `bson:"_id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	Country   string    `bson:"country" json:"country"`
	Message   string    `bson:"message" json:"message"`
	Type      string    `bson:"type" json:"type"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// ValidChatType reports whether t is an enumerated floor message kind
func ValidChatType(t string) bool {
	switch t {
	case ChatTypeChat, ChatTypeMotion, ChatTypePointOrder, ChatTypePointInfo, ChatTypePointPriv, ChatTypeYield:
		return true
	}
	return false
}
