// Package middleware provides HTTP middleware for session authentication.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// studentIDKey is the context key for storing the authenticated student ID.
const studentIDKey ContextKey = "studentID"

// TokenValidator is an interface for validating session tokens.
// This allows the middleware to work with any JWT service implementation.
type TokenValidator interface {
	ValidateToken(tokenString string) (StudentIDGetter, error)
}

// StudentIDGetter is an interface for extracting the student ID from token claims.
type StudentIDGetter interface {
	GetStudentID() string
}

// Auth creates middleware that validates session tokens and adds the student
// ID to the request context.
func Auth(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			// Handle case-insensitive "Bearer" prefix
			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimSpace(parts[1])
			if tokenString == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := validator.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), studentIDKey, claims.GetStudentID())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetStudentID extracts the authenticated student ID from the request context.
func GetStudentID(r *http.Request) (string, error) {
	studentID, ok := r.Context().Value(studentIDKey).(string)
	if !ok {
		return "", fmt.Errorf("student ID not found in request context")
	}
	return studentID, nil
}
