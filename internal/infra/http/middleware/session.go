package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/xavierca1/leadboard/internal/usecase"
)


type contextKey string

const sessionKey contextKey = "session"


// Session builds the explicit session object from the request and puts
// it in the context. The frontend sends the authenticated phone number
// in X-Session-Phone; everything downstream works off usecase.Session,
// never off request state.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		phone := r.Header.Get("X-Session-Phone")
		if phone == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{
				"error": "authenticated session with a phone number is required",
				"code":  usecase.CodeAuthRequired,
			})
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey, usecase.Session{Phone: phone})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}


func SessionFromContext(ctx context.Context) (usecase.Session, bool) {
	s, ok := ctx.Value(sessionKey).(usecase.Session)
	return s, ok
}
