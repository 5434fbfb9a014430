package state

import (
	"testing"

	pkgerrors "github.com/grocerly/appcore/pkg/errors"
	"github.com/grocerly/appcore/pkg/types"
)

func loggedInSession(id int64) SessionState {
	s := NewSessionState()
	s = ReduceSession(s, Success(OpLogin, types.User{ID: id, Name: "Asha"}))
	return s
}

func TestReduceSession_LoginLifecycle(t *testing.T) {
	s := NewSessionState()

	s = ReduceSession(s, Request(OpLogin))
	if !s.Loading {
		t.Fatalf("expected loading during request")
	}

	s = ReduceSession(s, Success(OpLogin, types.User{ID: 7, Name: "Asha"}))
	if s.Loading || !s.IsLoggedIn || s.User == nil || s.User.ID != 7 {
		t.Fatalf("unexpected session after login: %+v", s)
	}
}

func TestReduceSession_AuthFailureClearsUser(t *testing.T) {
	s := loggedInSession(7)

	s = ReduceSession(s, Failure(OpLogin, pkgerrors.New(pkgerrors.KindApplication, "invalid email or password")))

	if s.User != nil || s.IsLoggedIn {
		t.Fatalf("failed re-login must not keep the previous user: %+v", s)
	}
	if s.Err == nil || s.Err.Message() != "invalid email or password" {
		t.Fatalf("expected the failure error, got %v", s.Err)
	}
}

func TestReduceSession_EditProfileFailureKeepsUser(t *testing.T) {
	s := loggedInSession(7)

	s = ReduceSession(s, Failure(OpEditProfile, pkgerrors.New(pkgerrors.KindTransport, "offline")))

	if s.User == nil || !s.IsLoggedIn {
		t.Fatalf("a failed edit must keep the session: %+v", s)
	}
	if s.Err == nil {
		t.Fatalf("expected error recorded")
	}
}

func TestReduceSession_EditProfileSuccessReplacesUser(t *testing.T) {
	s := loggedInSession(7)

	s = ReduceSession(s, Success(OpEditProfile, types.User{ID: 7, Name: "Asha", Address: "12 Market Road"}))

	if s.User.Address != "12 Market Road" {
		t.Fatalf("expected merged user stored, got %+v", s.User)
	}
	if !s.IsLoggedIn {
		t.Fatalf("edit must not end the session")
	}
}

func TestReduceSession_LogoutResets(t *testing.T) {
	s := loggedInSession(7)

	s = ReduceSession(s, Apply(OpLogout, nil))

	if s.User != nil || s.IsLoggedIn || s.Loading || s.Err != nil {
		t.Fatalf("logout must reset the slice: %+v", s)
	}
}

func TestReduceSession_IgnoresWrongPayloadType(t *testing.T) {
	s := loggedInSession(7)

	next := ReduceSession(s, Success(OpLogin, "not a user"))

	if next.User == nil || next.User.ID != 7 {
		t.Fatalf("bad payload must leave the slice unchanged: %+v", next)
	}
}
