package services

import (
	"log"
	"sync"

	"munhub/db"
	"munhub/models"
)

// The registry hands out one SessionService per committee id so distinct
// committees proceed fully in parallel, each behind its own lock.
var (
	registryMu         sync.Mutex
	registry           = make(map[string]*SessionService)
	defaultCommitteeID = "main"
	defaultConfig      = models.SessionConfig{GslTime: 90, ModTime: 45}
)

// ConfigureSessions sets the default committee and session defaults, and
// eagerly creates the default committee's authority (restoring any persisted
// snapshot).
func ConfigureSessions(committeeID string, cfg models.SessionConfig) {
	registryMu.Lock()
	defaultCommitteeID = committeeID
	defaultConfig = cfg
	registryMu.Unlock()

	GetSessionService(committeeID)
}

// GetSessionService returns the authority for a committee, creating it on
// first use. An empty id resolves to the default committee.
func GetSessionService(committeeID string) *SessionService {
	registryMu.Lock()
	defer registryMu.Unlock()

	if committeeID == "" {
		committeeID = defaultCommitteeID
	}
	if svc, ok := registry[committeeID]; ok {
		return svc
	}

	svc := NewSessionService(committeeID, defaultConfig)
	if snapshot, err := db.LoadSessionSnapshot(committeeID); err != nil {
		log.Printf("Failed to restore session %s: %v", committeeID, err)
	} else if snapshot != nil {
		svc.restore(*snapshot)
		log.Printf("Restored session snapshot for committee %s", committeeID)
	}
	registry[committeeID] = svc
	return svc
}
