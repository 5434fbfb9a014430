package state

import (
	pkgerrors "github.com/grocerly/appcore/pkg/errors"
)

// ContactState is the transient contact-form submission status; there is no
// persisted entity behind it.
type ContactState struct {
	Loading   bool
	Err       *pkgerrors.Error
	Message   string
	Submitted bool
}

func NewContactState() ContactState {
	return ContactState{}
}

func ReduceContact(s ContactState, sig Signal) ContactState {
	if sig.Op != OpSubmitContact {
		return s
	}
	switch sig.Phase {
	case PhaseRequest:
		s.Loading = true
		s.Err = nil
		s.Submitted = false
	case PhaseSuccess:
		s.Loading = false
		s.Err = nil
		s.Submitted = true
		if msg, ok := sig.Payload.(string); ok {
			s.Message = msg
		}
	case PhaseFailure:
		s.Loading = false
		s.Err = sig.Err
		s.Submitted = false
	}
	return s
}
