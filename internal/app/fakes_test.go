package app_test

import (
	"context"
	"strings"
	"sync"

	"github.com/DRITI2906/HealthMate/internal/model"
)

type fakeUserStore struct {
	mu     sync.Mutex
	nextID uint
	users  []model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{nextID: 1}
}

func (s *fakeUserStore) Create(user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.ID = s.nextID
	s.nextID++
	s.users = append(s.users, *user)
	return nil
}

func (s *fakeUserStore) Update(user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == user.ID {
			s.users[i] = *user
			return nil
		}
	}
	return nil
}

func (s *fakeUserStore) GetByUsername(username string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].Username == username {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) GetByEmail(email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, email) {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) GetByID(id uint) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

type fakeTurnStore struct {
	mu        sync.Mutex
	nextID    uint
	sessions  []model.ChatSession
	messages  []model.ChatMessage
	recordErr error
}

func newFakeTurnStore() *fakeTurnStore {
	return &fakeTurnStore{nextID: 1}
}

func (s *fakeTurnStore) RecordTurn(session *model.ChatSession, userMsg, assistantMsg *model.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.recordErr != nil {
		return s.recordErr
	}
	session.ID = s.nextID
	s.nextID++
	userMsg.SessionID = session.ID
	assistantMsg.SessionID = session.ID
	s.sessions = append(s.sessions, *session)
	s.messages = append(s.messages, *userMsg, *assistantMsg)
	return nil
}

func (s *fakeTurnStore) ListByUserID(userID uint) ([]model.ChatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.ChatSession
	for _, sess := range s.sessions {
		if sess.UserID == userID {
			out = append(out, sess)
		}
	}
	return out, nil
}

func (s *fakeTurnStore) ListBySessionID(sessionID uint) ([]model.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.ChatMessage
	for _, msg := range s.messages {
		if msg.SessionID == sessionID {
			out = append(out, msg)
		}
	}
	return out, nil
}

type fakeMedicationStore struct {
	mu          sync.Mutex
	medications map[string]model.Medication
}

func newFakeMedicationStore() *fakeMedicationStore {
	return &fakeMedicationStore{medications: make(map[string]model.Medication)}
}

func (s *fakeMedicationStore) Create(medication *model.Medication) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.medications[medication.ID] = *medication
	return nil
}

func (s *fakeMedicationStore) ListByUserID(userID uint) ([]model.Medication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Medication
	for _, m := range s.medications {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *fakeMedicationStore) DeleteByIDAndUserID(id string, userID uint) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.medications[id]
	if !ok || m.UserID != userID {
		return 0, nil
	}
	delete(s.medications, id)
	return 1, nil
}

func (s *fakeMedicationStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.medications)
}

type fakeCompleter struct {
	reply      string
	err        error
	lastPrompt string
}

func (f *fakeCompleter) CompletePrompt(_ context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type fakePublisher struct {
	mu      sync.Mutex
	entries []model.AuditLog
}

func (f *fakePublisher) Publish(_ context.Context, entry model.AuditLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakePublisher) actions() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.entries))
	for _, e := range f.entries {
		out = append(out, e.Action)
	}
	return out
}
