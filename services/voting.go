package services

import (
	"strings"

	"munhub/errs"
	"munhub/models"
)

// StartVote opens a vote on the floor and moves the session to voting state.
// Options are trimmed and deduplicated case-insensitively; at least two must
// survive cleaning.
func (s *SessionService) StartVote(callerID, topic, voteType string, options []string) (models.Vote, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return models.Vote{}, errs.New(errs.CodeInvalidOptions, "topic is required")
	}
	if !models.ValidVoteType(voteType) {
		return models.Vote{}, errs.Newf(errs.CodeBadRequest, "unknown vote type: %s", voteType)
	}

	cleanOptions := make([]string, 0, len(options))
	seen := make(map[string]struct{})
	for _, opt := range options {
		opt = strings.TrimSpace(opt)
		if opt == "" {
			continue
		}
		if _, exists := seen[strings.ToLower(opt)]; exists {
			continue
		}
		seen[strings.ToLower(opt)] = struct{}{}
		cleanOptions = append(cleanOptions, opt)
	}
	if len(cleanOptions) < 2 {
		return models.Vote{}, errs.New(errs.CodeInvalidOptions, "at least two unique options are required")
	}

	s.mu.Lock()

	if _, err := s.chairLocked(callerID); err != nil {
		s.mu.Unlock()
		return models.Vote{}, err
	}

	if s.session.VoteData != nil && s.session.VoteData.Active {
		s.mu.Unlock()
		return models.Vote{}, errs.New(errs.CodeVoteAlreadyActive, "a vote is already in progress")
	}

	results := make(map[string]int, len(cleanOptions))
	for _, opt := range cleanOptions {
		results[opt] = 0
	}
	vote := models.Vote{
		Active:    true,
		Topic:     topic,
		Type:      voteType,
		Options:   cleanOptions,
		Voters:    []string{},
		Results:   results,
		StartedAt: s.now(),
	}
	s.session.VoteData = &vote
	s.session.State = models.StateVoting

	snap := vote.Clone()
	s.mu.Unlock()
	s.persist()
	return snap, nil
}

// CastVote records a member's ballot. The membership check and the tally
// increment happen as one step under the session lock, so concurrent retries
// from the same participant resolve to exactly one accepted ballot.
func (s *SessionService) CastVote(callerID, option string) (models.Vote, error) {
	s.mu.Lock()

	delegate, err := s.memberLocked(callerID)
	if err != nil {
		s.mu.Unlock()
		return models.Vote{}, err
	}
	if delegate.Role == models.RoleChair {
		s.mu.Unlock()
		return models.Vote{}, errs.New(errs.CodeForbidden, "the chair does not cast ballots")
	}

	vote := s.session.VoteData
	if vote == nil || !vote.Active {
		s.mu.Unlock()
		return models.Vote{}, errs.New(errs.CodeNoActiveVote, "no vote is in progress")
	}
	if !vote.HasOption(option) {
		s.mu.Unlock()
		return models.Vote{}, errs.Newf(errs.CodeInvalidOption, "%s is not on the ballot", option)
	}
	if vote.HasVoted(callerID) {
		s.mu.Unlock()
		return models.Vote{}, errs.New(errs.CodeAlreadyVoted, "ballot already cast")
	}

	vote.Voters = append(vote.Voters, callerID)
	vote.Results[option]++
	vote.TotalVotes = len(vote.Voters)

	snap := vote.Clone()
	s.mu.Unlock()
	s.persist()
	return snap, nil
}

// EndVote closes the active vote and archives it. The closed result stays in
// the snapshot until the next StartVote overwrites it.
func (s *SessionService) EndVote(callerID string) (models.Vote, error) {
	s.mu.Lock()

	if _, err := s.chairLocked(callerID); err != nil {
		s.mu.Unlock()
		return models.Vote{}, err
	}

	vote := s.session.VoteData
	if vote == nil || !vote.Active {
		s.mu.Unlock()
		return models.Vote{}, errs.New(errs.CodeNoActiveVote, "no vote is in progress")
	}

	vote.Active = false
	ended := s.now()
	vote.EndedAt = &ended
	s.session.VoteHistory = append(s.session.VoteHistory, vote.Clone())
	s.session.State = models.StateDebate

	snap := vote.Clone()
	s.mu.Unlock()
	s.persist()
	return snap, nil
}
