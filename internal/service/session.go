package service

import (
	"sync"

	"tourbook/internal/domain"
)

// Session holds the interactive session's state: the logged-in user and the
// chosen theme. It lives in process memory only; reads that need
// personalization receive UserID(), which is domain.NoUser while logged
// out.
type Session struct {
	mu    sync.Mutex
	user  *domain.User
	theme string
}

func NewSession(defaultTheme string) *Session {
	if defaultTheme == "" {
		defaultTheme = "Light"
	}
	return &Session{theme: defaultTheme}
}

func (s *Session) Login(user *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

func (s *Session) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

func (s *Session) CurrentUser() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *Session) UserID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return domain.NoUser
	}
	return s.user.ID
}

func (s *Session) Username() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return "Guest"
	}
	return s.user.Username
}

func (s *Session) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.IsAdmin()
}

func (s *Session) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

func (s *Session) SetTheme(theme string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
}
