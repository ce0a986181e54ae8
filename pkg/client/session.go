package client

import (
	"errors"
	"sync"
)

// ErrNotLoggedIn پیش از ارسال درخواست محافظت‌شده بدون ورود
var ErrNotLoggedIn = errors.New("client: session is not logged in")

type UserInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session وضعیت ورود کاربر؛ به جای ذخیره سراسری توکن به هر فراخوانی پاس داده می‌شود
type Session struct {
	mu    sync.RWMutex
	token string
	user  UserInfo
}

func NewSession() *Session {
	return &Session{}
}

// Login توکن صادر شده توسط سرویس احراز هویت را نگه می‌دارد
func (s *Session) Login(token string, user UserInfo) error {
	if token == "" {
		return errors.New("client: empty token")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = user
	return nil
}

func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = UserInfo{}
}

func (s *Session) LoggedIn() bool {
	_, ok := s.Token()
	return ok
}

func (s *Session) Token() (string, bool) {
	if s == nil {
		return "", false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

func (s *Session) User() UserInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}
