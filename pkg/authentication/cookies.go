// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"

	"github.com/gorilla/securecookie"

	"github.com/taskhive/workspace-service/internal/types"
)

const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// CookieManager encodes the credential pair into signed cookies for
// browser clients. The session interceptor on the Go client uses bearer
// headers instead; both read the same tokens.
type CookieManager struct {
	codec  *securecookie.SecureCookie
	secure bool
}

func NewCookieManager(hashKey, blockKey []byte, secure bool) *CookieManager {
	if len(blockKey) == 0 {
		blockKey = nil
	}

	return &CookieManager{
		codec:  securecookie.New(hashKey, blockKey),
		secure: secure,
	}
}

func (c *CookieManager) SetTokenCookies(w http.ResponseWriter, pair *types.TokenPair) error {
	if err := c.setCookie(w, AccessTokenCookie, pair.AccessToken); err != nil {
		return err
	}
	return c.setCookie(w, RefreshTokenCookie, pair.RefreshToken)
}

func (c *CookieManager) SetAccessTokenCookie(w http.ResponseWriter, accessToken string) error {
	return c.setCookie(w, AccessTokenCookie, accessToken)
}

func (c *CookieManager) setCookie(w http.ResponseWriter, name, value string) error {
	encoded, err := c.codec.Encode(name, value)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// ReadToken decodes the named token cookie, returning false when the
// cookie is absent or fails authentication.
func (c *CookieManager) ReadToken(r *http.Request, name string) (string, bool) {
	cookie, err := r.Cookie(name)
	if err != nil {
		return "", false
	}

	var value string
	if err := c.codec.Decode(name, cookie.Value, &value); err != nil {
		return "", false
	}

	return value, true
}

// ClearTokenCookies expires both token cookies; called on logout and on
// irrecoverable refresh failure.
func (c *CookieManager) ClearTokenCookies(w http.ResponseWriter) {
	for _, name := range []string{AccessTokenCookie, RefreshTokenCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   c.secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
}
