package services

import (
	"strings"
	"sync"
	"time"

	"munhub/db"
	"munhub/errs"
	"munhub/models"
)

// SessionService is the authority for one committee session. Every mutation
// runs under the write lock so the session invariants (single chair, single
// active speaker, single active vote, one ballot per voter) hold under
// concurrent requests. Reads return deep copies taken under the read lock.
type SessionService struct {
	mu       sync.RWMutex
	session  *models.Session
	defaults models.SessionConfig
	now      func() time.Time
}

// NewSessionService creates an authority for the given committee id
func NewSessionService(committeeID string, cfg models.SessionConfig) *SessionService {
	return &SessionService{
		session:  newSession(committeeID, cfg),
		defaults: cfg,
		now:      time.Now,
	}
}

func newSession(committeeID string, cfg models.SessionConfig) *models.Session {
	return &models.Session{
		ID:            committeeID,
		State:         models.StateSetup,
		SessionConfig: cfg,
		Delegates:     make(map[string]models.Delegate),
		SpeakersList:  []models.SpeakerEntry{},
		ChatLog:       []models.ChatMessage{},
		Chits:         []models.Chit{},
	}
}

// restore replaces the in-memory session with a persisted snapshot
func (s *SessionService) restore(session models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session.Delegates == nil {
		session.Delegates = make(map[string]models.Delegate)
	}
	s.session = &session
}

// Snapshot returns a consistent deep copy of the session with chits filtered
// for the viewer. An empty or unknown viewer sees the public state only.
func (s *SessionService) Snapshot(viewerID string) models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.session.Clone()

	viewerRole := ""
	if d, ok := s.session.Delegates[viewerID]; ok {
		viewerRole = d.Role
	}
	visible := make([]models.Chit, 0, len(snap.Chits))
	for _, chit := range snap.Chits {
		if chit.VisibleTo(viewerID, viewerRole) {
			visible = append(visible, chit)
		}
	}
	snap.Chits = visible

	return snap
}

// Join registers a participant, or returns the existing delegate on an
// idempotent rejoin with the same country.
func (s *SessionService) Join(userID, country, role string) (models.Delegate, error) {
	country = strings.TrimSpace(country)
	if userID == "" {
		return models.Delegate{}, errs.New(errs.CodeBadRequest, "participant id is required")
	}
	if country == "" {
		return models.Delegate{}, errs.New(errs.CodeBadRequest, "country is required")
	}
	if role == "" {
		role = models.RoleDelegate
	}
	if role != models.RoleDelegate && role != models.RoleChair {
		return models.Delegate{}, errs.Newf(errs.CodeBadRequest, "unknown role: %s", role)
	}

	s.mu.Lock()

	if existing, ok := s.session.Delegates[userID]; ok {
		s.mu.Unlock()
		if !strings.EqualFold(existing.Country, country) {
			return models.Delegate{}, errs.Newf(errs.CodeAlreadyJoined, "already joined as %s", existing.Country)
		}
		return existing, nil
	}

	if role == models.RoleChair && s.session.ChairUserID != "" {
		s.mu.Unlock()
		return models.Delegate{}, errs.New(errs.CodeChairTaken, "the chair is already assigned")
	}

	for _, d := range s.session.Delegates {
		if strings.EqualFold(d.Country, country) {
			s.mu.Unlock()
			return models.Delegate{}, errs.Newf(errs.CodeDuplicateCountry, "country %s is already represented", d.Country)
		}
	}

	delegate := models.Delegate{
		UserID:  userID,
		Country: country,
		Role:    role,
	}
	s.session.Delegates[userID] = delegate
	if role == models.RoleChair {
		s.session.ChairUserID = userID
	}

	s.mu.Unlock()
	s.persist()
	return delegate, nil
}

// UpdateSession applies chair adjustments to the lifecycle state and config.
// Nil fields are left untouched.
func (s *SessionService) UpdateSession(callerID string, state string, cfg *models.SessionConfig) error {
	if state != "" && !models.ValidState(state) {
		return errs.Newf(errs.CodeBadRequest, "unknown session state: %s", state)
	}
	if cfg != nil && (cfg.GslTime <= 0 || cfg.ModTime <= 0) {
		return errs.New(errs.CodeBadRequest, "speaking times must be positive")
	}

	s.mu.Lock()

	if _, err := s.chairLocked(callerID); err != nil {
		s.mu.Unlock()
		return err
	}

	if state != "" {
		s.session.State = state
	}
	if cfg != nil {
		s.session.SessionConfig = *cfg
	}

	s.mu.Unlock()
	s.persist()
	return nil
}

// Reset discards the session and starts a fresh one in setup state. Once a
// chair is assigned only the chair may reset; before that anyone can.
func (s *SessionService) Reset(callerID string) error {
	s.mu.Lock()

	if s.session.ChairUserID != "" {
		if _, err := s.chairLocked(callerID); err != nil {
			s.mu.Unlock()
			return err
		}
	}

	s.session = newSession(s.session.ID, s.defaults)

	s.mu.Unlock()
	s.persist()
	return nil
}

// memberLocked resolves the caller's delegate; callers must hold the lock
func (s *SessionService) memberLocked(userID string) (models.Delegate, error) {
	d, ok := s.session.Delegates[userID]
	if !ok {
		return models.Delegate{}, errs.New(errs.CodeNotAMember, "join the session first")
	}
	return d, nil
}

// chairLocked resolves the caller and requires the chair role
func (s *SessionService) chairLocked(userID string) (models.Delegate, error) {
	d, err := s.memberLocked(userID)
	if err != nil {
		return models.Delegate{}, err
	}
	if d.Role != models.RoleChair {
		return models.Delegate{}, errs.New(errs.CodeForbidden, "only the chair may do this")
	}
	return d, nil
}

// persist writes the current snapshot through to storage, outside the lock
func (s *SessionService) persist() {
	s.mu.RLock()
	snap := s.session.Clone()
	s.mu.RUnlock()
	db.SaveSessionSnapshot(snap)
}
