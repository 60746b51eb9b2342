package interceptors

import (
	"context"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"

	"github.com/acmeplatform/embedded-finance.api/helpers"
)

// SessionIntercept checks that a valid demo session accompanies the request
// and stores it in the request context for the handlers
func SessionIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := helpers.GetSession(r)
		if err != nil {
			log.ErrorR(r, fmt.Errorf("SessionInterceptor unauthorised: [%v]", err))
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), helpers.ContextKeySession, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
