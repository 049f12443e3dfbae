// internal/handlers/guest.go
package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/crazytens/crazytens/internal/auth"
)

// EnsureEphemeralGuest resolves the caller to a guest player id. A
// valid auth_token cookie is honored; anything else mints a fresh guest
// id and sets its signed cookie on the response. There is no account
// store — the id in the token is the identity.
func EnsureEphemeralGuest(w http.ResponseWriter, r *http.Request) (uuid.UUID, error) {
	cookieHeader := r.Header.Get("Cookie")
	if strings.Contains(cookieHeader, "auth_token=") {
		token := extractCookieToken(cookieHeader, "auth_token")
		if playerIDStr, err := auth.AuthenticateJWT(token); err == nil {
			playerID, parseErr := uuid.Parse(playerIDStr)
			if parseErr != nil {
				return uuid.Nil, fmt.Errorf("invalid player ID in token: %w", parseErr)
			}
			return playerID, nil
		}
		// Fall through: expired or garbage token gets a fresh guest.
	}

	playerID := uuid.New()
	token, err := auth.CreateJWT(playerID.String())
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create guest JWT: %w", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		HttpOnly: true,
		Path:     "/",
	})
	return playerID, nil
}
