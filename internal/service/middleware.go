package service

import (
	"net/http"
	"time"

	"sports-admin-service/internal/permission"
)

// requirePermission runs the same access gate the client uses, over the API
// route table. Root users bypass it, public entries pass anyone
// authenticated, everything else needs a permission intersection, and an
// unmatched path is denied.
func (s *adminService) requirePermission(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessionFromContext(r.Context())
		if !ok {
			s.writeError(w, http.StatusUnauthorized, "missing session")
			return
		}

		decision := s.gate.Decide(r.URL.Path, sess.Permissions, sess.User.IsRootUser)
		if decision != permission.Authorized {
			s.writeError(w, http.StatusForbidden, "access denied")
			return
		}

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *adminService) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Infow("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
