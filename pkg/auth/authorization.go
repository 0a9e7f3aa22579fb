package auth

import (
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/samborkent/uuidv7"
)

var ErrWrongPassphrase = errors.New("wrong passphrase")

// Verifier reports whether a session token carries admin rights. Services
// only ever see this capability, never how the token was obtained.
type Verifier interface {
	Verify(token string) bool
}

// Service exchanges the shared admin passphrase for session tokens. There
// is a single passphrase and no per-admin identity.
type Service struct {
	passphrase string

	mu       sync.Mutex
	sessions map[string]bool
}

func NewService(passphrase string) *Service {
	return &Service{
		passphrase: passphrase,
		sessions:   make(map[string]bool),
	}
}

// Login checks the passphrase and issues a fresh session token.
func (s *Service) Login(passphrase string) (string, error) {
	if s.passphrase == "" || passphrase != s.passphrase {
		return "", ErrWrongPassphrase
	}

	token := uuidv7.New().String()
	s.mu.Lock()
	s.sessions[token] = true
	s.mu.Unlock()
	return token, nil
}

func (s *Service) Verify(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[token]
}

// AdminMiddleware rejects requests that do not carry a valid admin session
// token in the Authorization header.
func AdminMiddleware(verifier Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		if !verifier.Verify(token) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session token"})
			c.Abort()
			return
		}

		c.Next()
	}
}
