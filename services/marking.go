package services

import (
	"munhub/errs"
	"munhub/models"
)

// MarkDelegate applies a chair score adjustment. Deltas may be negative and
// scores have no floor. The chair cannot be marked.
func (s *SessionService) MarkDelegate(callerID, targetID string, delta int) (models.Delegate, error) {
	s.mu.Lock()

	if _, err := s.chairLocked(callerID); err != nil {
		s.mu.Unlock()
		return models.Delegate{}, err
	}

	target, ok := s.session.Delegates[targetID]
	if !ok {
		s.mu.Unlock()
		return models.Delegate{}, errs.New(errs.CodeUnknownDelegate, "delegate has not joined")
	}
	if target.Role == models.RoleChair {
		s.mu.Unlock()
		return models.Delegate{}, errs.New(errs.CodeForbidden, "the chair cannot be marked")
	}

	target.Score += delta
	s.session.Delegates[targetID] = target

	s.mu.Unlock()
	s.persist()
	return target, nil
}
