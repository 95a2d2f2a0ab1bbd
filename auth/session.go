package auth

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const sessionTTL = 24 * time.Hour

// POST /session
//
// Issues an anonymous storefront session: a session ID plus a signed token
// the client sends back on cart and checkout requests. This scopes carts to
// a browser session; it is not user authentication.
func CreateSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := "sess_" + generateRandomString(16)
		expiresAt := time.Now().Add(sessionTTL)

		token, err := IssueSessionToken(sessionID, expiresAt)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"session_id": sessionID,
			"token":      token,
			"expires_at": expiresAt,
		})
	}
}

func generateRandomString(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "rand_session"
	}
	return hex.EncodeToString(bytes)
}

// IssueSessionToken signs a session JWT with the shared JWT_SECRET.
func IssueSessionToken(sessionID string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"session_id": sessionID,
		"role":       "shopper",
		"exp":        expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
