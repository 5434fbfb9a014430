package state

import (
	pkgerrors "github.com/grocerly/appcore/pkg/errors"
	"github.com/grocerly/appcore/pkg/types"
)

// SessionState is the logged-in user slice. Exactly one exists per store.
type SessionState struct {
	User       *types.User
	IsLoggedIn bool
	Loading    bool
	Err        *pkgerrors.Error
}

func NewSessionState() SessionState {
	return SessionState{}
}

// ReduceSession advances the session slice. Auth failures clear the user so
// a failed re-login can never leave a stale session from a previous user.
func ReduceSession(s SessionState, sig Signal) SessionState {
	switch sig.Op {
	case OpSignup, OpLogin:
		switch sig.Phase {
		case PhaseRequest:
			s.Loading = true
			s.Err = nil
		case PhaseSuccess:
			user, ok := sig.Payload.(types.User)
			if !ok {
				return s
			}
			s.Loading = false
			s.Err = nil
			s.User = &user
			s.IsLoggedIn = true
		case PhaseFailure:
			s.Loading = false
			s.Err = sig.Err
			s.User = nil
			s.IsLoggedIn = false
		}
	case OpEditProfile:
		switch sig.Phase {
		case PhaseRequest:
			s.Loading = true
			s.Err = nil
		case PhaseSuccess:
			user, ok := sig.Payload.(types.User)
			if !ok {
				return s
			}
			s.Loading = false
			s.Err = nil
			s.User = &user
		case PhaseFailure:
			s.Loading = false
			s.Err = sig.Err
		}
	case OpLogout:
		return NewSessionState()
	}
	return s
}
