package services

import (
	"fmt"

	"munhub/errs"
	"munhub/models"

	"github.com/google/uuid"
)

// Yield targets
const (
	YieldToChair     = "Chair"
	YieldToQuestions = "Questions"
	YieldToDelegate  = "Delegate"
)

// JoinQueue appends the caller to the General Speakers List. Joining twice is
// a no-op; queue order is append order and is never reordered.
func (s *SessionService) JoinQueue(userID string) ([]models.SpeakerEntry, error) {
	s.mu.Lock()

	delegate, err := s.memberLocked(userID)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}

	for _, entry := range s.session.SpeakersList {
		if entry.UserID == userID {
			list := append([]models.SpeakerEntry(nil), s.session.SpeakersList...)
			s.mu.Unlock()
			return list, nil
		}
	}

	s.session.SpeakersList = append(s.session.SpeakersList, models.SpeakerEntry{
		UserID:  userID,
		Country: delegate.Country,
	})
	list := append([]models.SpeakerEntry(nil), s.session.SpeakersList...)

	s.mu.Unlock()
	s.persist()
	return list, nil
}

// LeaveQueue removes the caller's entry. The active speaker cannot leave; the
// chair ends the speech instead.
func (s *SessionService) LeaveQueue(userID string) ([]models.SpeakerEntry, error) {
	s.mu.Lock()

	if _, err := s.memberLocked(userID); err != nil {
		s.mu.Unlock()
		return nil, err
	}

	idx := -1
	for i, entry := range s.session.SpeakersList {
		if entry.UserID == userID {
			if entry.IsSpeaking {
				s.mu.Unlock()
				return nil, errs.New(errs.CodeForbidden, "the active speaker cannot leave the queue")
			}
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return nil, errs.New(errs.CodeNotQueued, "not on the speakers list")
	}

	s.session.SpeakersList = append(s.session.SpeakersList[:idx], s.session.SpeakersList[idx+1:]...)
	list := append([]models.SpeakerEntry(nil), s.session.SpeakersList...)

	s.mu.Unlock()
	s.persist()
	return list, nil
}

// StartSpeaking gives the floor to a queued delegate and anchors the speech
// timer. The anchor timestamp is the single source of truth for elapsed time;
// clients subtract it from their own clock.
func (s *SessionService) StartSpeaking(callerID, targetID string) error {
	s.mu.Lock()

	if _, err := s.chairLocked(callerID); err != nil {
		s.mu.Unlock()
		return err
	}

	if s.session.CurrentSpeechStart != nil {
		s.mu.Unlock()
		return errs.New(errs.CodeFloorBusy, "a speaker already has the floor")
	}

	idx := -1
	for i, entry := range s.session.SpeakersList {
		if entry.UserID == targetID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return errs.New(errs.CodeNotQueued, "delegate is not on the speakers list")
	}

	s.session.SpeakersList[idx].IsSpeaking = true
	start := s.now()
	s.session.CurrentSpeechStart = &start

	s.mu.Unlock()
	s.persist()
	return nil
}

// EndSpeaking closes the current speech, removing the speaker from the queue
// and returning the floor to open.
func (s *SessionService) EndSpeaking(callerID string) error {
	s.mu.Lock()

	if _, err := s.chairLocked(callerID); err != nil {
		s.mu.Unlock()
		return err
	}

	idx := -1
	for i, entry := range s.session.SpeakersList {
		if entry.IsSpeaking {
			idx = i
			break
		}
	}
	if idx < 0 || s.session.CurrentSpeechStart == nil {
		s.mu.Unlock()
		return errs.New(errs.CodeNoActiveSpeaker, "the floor is open")
	}

	s.session.SpeakersList = append(s.session.SpeakersList[:idx], s.session.SpeakersList[idx+1:]...)
	s.session.CurrentSpeechStart = nil

	s.mu.Unlock()
	s.persist()
	return nil
}

// Yield records the active speaker yielding their remaining time. Advisory
// only: the floor stays with the speaker until the chair ends the speech.
func (s *SessionService) Yield(callerID, target string) (models.ChatMessage, error) {
	switch target {
	case YieldToChair, YieldToQuestions, YieldToDelegate:
	default:
		return models.ChatMessage{}, errs.Newf(errs.CodeBadRequest, "unknown yield target: %s", target)
	}

	s.mu.Lock()

	delegate, err := s.memberLocked(callerID)
	if err != nil {
		s.mu.Unlock()
		return models.ChatMessage{}, err
	}

	speaking := false
	for _, entry := range s.session.SpeakersList {
		if entry.IsSpeaking && entry.UserID == callerID {
			speaking = true
			break
		}
	}
	if !speaking {
		s.mu.Unlock()
		return models.ChatMessage{}, errs.New(errs.CodeForbidden, "only the active speaker may yield")
	}

	msg := models.ChatMessage{
		ID:        uuid.NewString(),
		UserID:    callerID,
		Country:   delegate.Country,
		Message:   fmt.Sprintf("Yields remaining time to %s", target),
		Type:      models.ChatTypeYield,
		Timestamp: s.now(),
	}
	s.session.ChatLog = append(s.session.ChatLog, msg)

	s.mu.Unlock()
	s.persist()
	return msg, nil
}
