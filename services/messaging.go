package services

import (
	"strings"

	"munhub/errs"
	"munhub/models"

	"github.com/google/uuid"
)

// PostMessage appends a floor message. Any member may post any kind; whether
// a point or motion is in order is the chair's call, not the server's.
func (s *SessionService) PostMessage(callerID, text, msgType string) (models.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.ChatMessage{}, errs.New(errs.CodeEmptyMessage, "message is empty")
	}
	if msgType == "" {
		msgType = models.ChatTypeChat
	}
	if !models.ValidChatType(msgType) {
		return models.ChatMessage{}, errs.Newf(errs.CodeBadRequest, "unknown message type: %s", msgType)
	}

	s.mu.Lock()

	delegate, err := s.memberLocked(callerID)
	if err != nil {
		s.mu.Unlock()
		return models.ChatMessage{}, err
	}

	msg := models.ChatMessage{
		ID:        uuid.NewString(),
		UserID:    callerID,
		Country:   delegate.Country,
		Message:   text,
		Type:      msgType,
		Timestamp: s.now(),
	}
	s.session.ChatLog = append(s.session.ChatLog, msg)

	s.mu.Unlock()
	s.persist()
	return msg, nil
}

// SendChit appends a private note. The recipient "chair" resolves to whoever
// currently holds the chair. Chits are stored viewer-agnostic; filtering
// happens when a snapshot is read.
func (s *SessionService) SendChit(callerID, toUser, message string, isViaEb bool, tag string) (models.Chit, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return models.Chit{}, errs.New(errs.CodeEmptyMessage, "message is empty")
	}
	if tag == "" {
		tag = models.ChitTagGeneral
	}
	if !models.ValidChitTag(tag) {
		return models.Chit{}, errs.Newf(errs.CodeBadRequest, "unknown chit tag: %s", tag)
	}

	s.mu.Lock()

	sender, err := s.memberLocked(callerID)
	if err != nil {
		s.mu.Unlock()
		return models.Chit{}, err
	}

	recipientID := toUser
	recipientName := ""
	if toUser == models.RecipientChair {
		if s.session.ChairUserID == "" {
			s.mu.Unlock()
			return models.Chit{}, errs.New(errs.CodeUnknownRecipient, "no chair has been assigned")
		}
		recipientID = s.session.ChairUserID
		recipientName = "Chair"
	} else {
		recipient, ok := s.session.Delegates[toUser]
		if !ok {
			s.mu.Unlock()
			return models.Chit{}, errs.New(errs.CodeUnknownRecipient, "recipient has not joined")
		}
		recipientName = recipient.Country
	}
	if recipientID == callerID {
		s.mu.Unlock()
		return models.Chit{}, errs.New(errs.CodeSelfChit, "cannot send a chit to yourself")
	}

	chit := models.Chit{
		ID:          uuid.NewString(),
		FromUserID:  callerID,
		ToUserID:    recipientID,
		FromCountry: sender.Country,
		ToCountry:   recipientName,
		Message:     message,
		IsViaEb:     isViaEb,
		Tag:         tag,
		Timestamp:   s.now(),
	}
	s.session.Chits = append(s.session.Chits, chit)

	s.mu.Unlock()
	s.persist()
	return chit, nil
}
