package domain

import "context"

type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeyUserEmail CtxKey = "Email"
	KeyUserRole  CtxKey = "Role"
	KeySession   CtxKey = "Session"
)

type SessionState string

const (
	SessionUninitialized SessionState = "uninitialized"
	SessionInitializing  SessionState = "initializing"
	SessionReady         SessionState = "ready"
	SessionError         SessionState = "error"
)

// Session is the authenticated identity of one request. It is built by the
// auth middleware and threaded through the request context.
type Session struct {
	State     SessionState
	UserID    string
	ProfileID string
	Email     string
	Role      string
	Err       error
}

func (s *Session) Ready() bool {
	return s != nil && s.State == SessionReady && s.ProfileID != ""
}

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, KeySession, s)
}

// SessionFromContext returns the request session. It accepts both a plain
// context and a *gin.Context whose Keys hold the session.
func SessionFromContext(ctx context.Context) *Session {
	if ctx == nil {
		return nil
	}
	if s, ok := ctx.Value(KeySession).(*Session); ok {
		return s
	}
	if s, ok := ctx.Value(string(KeySession)).(*Session); ok {
		return s
	}
	return nil
}
