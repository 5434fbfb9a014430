package state

import (
	pkgerrors "github.com/grocerly/appcore/pkg/errors"
	"github.com/grocerly/appcore/pkg/types"
)

// Admin slices are read-only back-office lists: fetched wholesale, replaced
// wholesale, never mutated locally.

type AdminUsersState struct {
	Loading bool
	Err     *pkgerrors.Error
	Users   []types.User
}

func NewAdminUsersState() AdminUsersState {
	return AdminUsersState{Users: []types.User{}}
}

func ReduceAdminUsers(s AdminUsersState, sig Signal) AdminUsersState {
	if sig.Op != OpFetchAdminUsers {
		return s
	}
	switch sig.Phase {
	case PhaseRequest:
		s.Loading = true
		s.Err = nil
	case PhaseSuccess:
		users, ok := sig.Payload.([]types.User)
		if !ok {
			return s
		}
		s.Loading = false
		s.Err = nil
		s.Users = users
	case PhaseFailure:
		s.Loading = false
		s.Err = sig.Err
		s.Users = []types.User{}
	}
	return s
}

type AdminProductsState struct {
	Loading  bool
	Err      *pkgerrors.Error
	Products []types.Product
}

func NewAdminProductsState() AdminProductsState {
	return AdminProductsState{Products: []types.Product{}}
}

func ReduceAdminProducts(s AdminProductsState, sig Signal) AdminProductsState {
	if sig.Op != OpFetchAdminProducts {
		return s
	}
	switch sig.Phase {
	case PhaseRequest:
		s.Loading = true
		s.Err = nil
	case PhaseSuccess:
		products, ok := sig.Payload.([]types.Product)
		if !ok {
			return s
		}
		s.Loading = false
		s.Err = nil
		s.Products = products
	case PhaseFailure:
		s.Loading = false
		s.Err = sig.Err
		s.Products = []types.Product{}
	}
	return s
}

type AdminContactsState struct {
	Loading  bool
	Err      *pkgerrors.Error
	Messages []types.ContactMessage
}

func NewAdminContactsState() AdminContactsState {
	return AdminContactsState{Messages: []types.ContactMessage{}}
}

func ReduceAdminContacts(s AdminContactsState, sig Signal) AdminContactsState {
	if sig.Op != OpFetchAdminContacts {
		return s
	}
	switch sig.Phase {
	case PhaseRequest:
		s.Loading = true
		s.Err = nil
	case PhaseSuccess:
		messages, ok := sig.Payload.([]types.ContactMessage)
		if !ok {
			return s
		}
		s.Loading = false
		s.Err = nil
		s.Messages = messages
	case PhaseFailure:
		s.Loading = false
		s.Err = sig.Err
		s.Messages = []types.ContactMessage{}
	}
	return s
}
