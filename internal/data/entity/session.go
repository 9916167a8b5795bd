package entity

import (
	"time"
)

type Session struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s *Session) Identity() Identity {
	return Identity{
		Username: s.Username,
		Name:     s.Name,
		IsAdmin:  s.IsAdmin,
	}
}

func (s *Session) ExpiredAt(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
