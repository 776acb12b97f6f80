package model

import (
	"net/http"
	"time"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`

	User AccessToken `json:"user"`

	CookieName string `json:"-"`
}

func (r LoginResponse) CookieInfo() []http.Cookie {
	if r.CookieName == "" {
		return nil
	}

	return []http.Cookie{{
		Name:     r.CookieName,
		Value:    r.AccessToken,
		Path:     "/",
		Expires:  time.Now().Add(time.Duration(r.ExpiresIn) * time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}}
}

type VerifyRequest struct{}

type VerifyResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
