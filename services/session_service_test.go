package services

import (
	"testing"
	"time"

	"munhub/errs"
	"munhub/models"
)

func newTestService() *SessionService {
	return NewSessionService("test", models.SessionConfig{GslTime: 90, ModTime: 45})
}

func newTestCommittee(t *testing.T) *SessionService {
	t.Helper()
	svc := newTestService()
	if _, err := svc.Join("chair1", "Chairland", models.RoleChair); err != nil {
		t.Fatalf("Failed to join chair: %v", err)
	}
	for _, d := range []struct{ id, country string }{
		{"userA", "France"},
		{"userB", "Brazil"},
		{"userC", "Japan"},
	} {
		if _, err := svc.Join(d.id, d.country, models.RoleDelegate); err != nil {
			t.Fatalf("Failed to join %s: %v", d.id, err)
		}
	}
	return svc
}

func expectCode(t *testing.T, err error, code errs.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected error %s, got nil", code)
	}
	if got := errs.CodeOf(err); got != code {
		t.Errorf("Expected code %s, got %s (%v)", code, got, err)
	}
}

func TestJoinIsIdempotent(t *testing.T) {
	svc := newTestService()

	first, err := svc.Join("user1", "France", models.RoleDelegate)
	if err != nil {
		t.Fatalf("Failed to join: %v", err)
	}

	second, err := svc.Join("user1", "France", models.RoleDelegate)
	if err != nil {
		t.Fatalf("Rejoin with same country should be a no-op: %v", err)
	}
	if second != first {
		t.Errorf("Rejoin returned a different delegate: %+v vs %+v", second, first)
	}

	snap := svc.Snapshot("user1")
	if len(snap.Delegates) != 1 {
		t.Errorf("Expected 1 delegate after rejoin, got %d", len(snap.Delegates))
	}
}

func TestJoinRejectsCountryChange(t *testing.T) {
	svc := newTestService()
	svc.Join("user1", "France", models.RoleDelegate)

	_, err := svc.Join("user1", "Germany", models.RoleDelegate)
	expectCode(t, err, errs.CodeAlreadyJoined)
}

func TestJoinRejectsDuplicateCountryCaseInsensitive(t *testing.T) {
	svc := newTestService()
	svc.Join("user1", "France", models.RoleDelegate)

	_, err := svc.Join("user2", "fRaNcE", models.RoleDelegate)
	expectCode(t, err, errs.CodeDuplicateCountry)
}

func TestChairUniqueness(t *testing.T) {
	svc := newTestService()

	if _, err := svc.Join("chair1", "Chairland", models.RoleChair); err != nil {
		t.Fatalf("First chair join failed: %v", err)
	}

	_, err := svc.Join("chair2", "Otherland", models.RoleChair)
	expectCode(t, err, errs.CodeChairTaken)

	snap := svc.Snapshot("chair1")
	if snap.ChairUserID != "chair1" {
		t.Errorf("Chair must not be overwritten, got %s", snap.ChairUserID)
	}
	chairs := 0
	for _, d := range snap.Delegates {
		if d.Role == models.RoleChair {
			chairs++
		}
	}
	if chairs != 1 {
		t.Errorf("Expected exactly 1 chair, got %d", chairs)
	}
}

func TestJoinValidation(t *testing.T) {
	svc := newTestService()

	if _, err := svc.Join("user1", "   ", models.RoleDelegate); err == nil {
		t.Error("Blank country should be rejected")
	}
	if _, err := svc.Join("", "France", models.RoleDelegate); err == nil {
		t.Error("Empty participant id should be rejected")
	}
	if _, err := svc.Join("user1", "France", "observer"); err == nil {
		t.Error("Unknown role should be rejected")
	}
}

func TestUpdateSessionIsChairOnly(t *testing.T) {
	svc := newTestCommittee(t)

	err := svc.UpdateSession("userA", models.StateDebate, nil)
	expectCode(t, err, errs.CodeForbidden)

	err = svc.UpdateSession("stranger", models.StateDebate, nil)
	expectCode(t, err, errs.CodeNotAMember)

	if err := svc.UpdateSession("chair1", models.StateDebate, &models.SessionConfig{GslTime: 60, ModTime: 30}); err != nil {
		t.Fatalf("Chair update failed: %v", err)
	}

	snap := svc.Snapshot("chair1")
	if snap.State != models.StateDebate {
		t.Errorf("Expected state debate, got %s", snap.State)
	}
	if snap.SessionConfig.GslTime != 60 {
		t.Errorf("Expected gslTime 60, got %d", snap.SessionConfig.GslTime)
	}

	if err := svc.UpdateSession("chair1", "plenary", nil); err == nil {
		t.Error("Unknown state should be rejected")
	}
	if err := svc.UpdateSession("chair1", "", &models.SessionConfig{GslTime: 0, ModTime: 30}); err == nil {
		t.Error("Non-positive gslTime should be rejected")
	}
}

func TestMarkDelegate(t *testing.T) {
	svc := newTestCommittee(t)

	if _, err := svc.MarkDelegate("chair1", "userA", 5); err != nil {
		t.Fatalf("Mark failed: %v", err)
	}
	d, err := svc.MarkDelegate("chair1", "userA", -1)
	if err != nil {
		t.Fatalf("Mark failed: %v", err)
	}
	if d.Score != 4 {
		t.Errorf("Expected score 4 after +5 -1, got %d", d.Score)
	}

	_, err = svc.MarkDelegate("userA", "userB", 5)
	expectCode(t, err, errs.CodeForbidden)

	_, err = svc.MarkDelegate("chair1", "ghost", 5)
	expectCode(t, err, errs.CodeUnknownDelegate)

	_, err = svc.MarkDelegate("chair1", "chair1", 5)
	expectCode(t, err, errs.CodeForbidden)
}

func TestNegativeScoresAllowed(t *testing.T) {
	svc := newTestCommittee(t)

	d, err := svc.MarkDelegate("chair1", "userB", -3)
	if err != nil {
		t.Fatalf("Mark failed: %v", err)
	}
	if d.Score != -3 {
		t.Errorf("Expected score -3, got %d", d.Score)
	}
}

func TestResetSession(t *testing.T) {
	svc := newTestCommittee(t)
	svc.PostMessage("userA", "hello", models.ChatTypeChat)

	err := svc.Reset("userA")
	expectCode(t, err, errs.CodeForbidden)

	if err := svc.Reset("chair1"); err != nil {
		t.Fatalf("Chair reset failed: %v", err)
	}

	snap := svc.Snapshot("chair1")
	if snap.State != models.StateSetup {
		t.Errorf("Expected setup state after reset, got %s", snap.State)
	}
	if len(snap.Delegates) != 0 || len(snap.ChatLog) != 0 || snap.ChairUserID != "" {
		t.Error("Reset must clear delegates, chat log and chair")
	}

	// With no chair assigned anyone may reset
	if err := svc.Reset("whoever"); err != nil {
		t.Errorf("Reset without chair should be open: %v", err)
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	svc := newTestCommittee(t)
	svc.JoinQueue("userA")

	snap := svc.Snapshot("userA")
	snap.Delegates["intruder"] = models.Delegate{UserID: "intruder"}
	snap.SpeakersList[0].IsSpeaking = true

	fresh := svc.Snapshot("userA")
	if _, ok := fresh.Delegates["intruder"]; ok {
		t.Error("Mutating a snapshot must not affect live state")
	}
	if fresh.SpeakersList[0].IsSpeaking {
		t.Error("Mutating a snapshot's speakers list must not affect live state")
	}
}

func TestRestoreSnapshot(t *testing.T) {
	svc := newTestService()
	start := time.Now().Add(-30 * time.Second)
	svc.restore(models.Session{
		ID:                 "test",
		State:              models.StateDebate,
		SessionConfig:      models.SessionConfig{GslTime: 120, ModTime: 60},
		ChairUserID:        "chair1",
		Delegates:          map[string]models.Delegate{"chair1": {UserID: "chair1", Country: "Chairland", Role: models.RoleChair}},
		CurrentSpeechStart: &start,
	})

	snap := svc.Snapshot("chair1")
	if snap.State != models.StateDebate || snap.SessionConfig.GslTime != 120 {
		t.Errorf("Restored session mismatch: %+v", snap)
	}
	if snap.CurrentSpeechStart == nil || !snap.CurrentSpeechStart.Equal(start) {
		t.Error("Restored speech anchor mismatch")
	}
}
