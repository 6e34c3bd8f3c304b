package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/GlebRadaev/jobmart/pkg/utils"
)

type ContextKey string

const AccountIDKey ContextKey = "accountID"

const AdminTokenHeader = "X-Admin-Token"

type Middleware struct {
	jwt        JWTServiceInterface
	hasher     HashServiceInterface
	adminToken string
}

// NewMiddleware builds the bearer and admin guards. adminTokenHash is the
// bcrypt hash of the admin token; an empty hash disables the admin routes.
func NewMiddleware(jwt JWTServiceInterface, hasher HashServiceInterface, adminTokenHash string) *Middleware {
	return &Middleware{jwt: jwt, hasher: hasher, adminToken: adminTokenHash}
}

func (m *Middleware) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		accountID, err := claims.AccountID()
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), AccountIDKey, accountID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.hasher.CompareToken(m.adminToken, r.Header.Get(AdminTokenHeader)) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}
