package actions

import (
	"context"
	"strconv"

	"github.com/grocerly/appcore/internal/apiclient"
	"github.com/grocerly/appcore/internal/state"
	pkgerrors "github.com/grocerly/appcore/pkg/errors"
	"github.com/grocerly/appcore/pkg/types"
)

// SignupInput carries a registration request.
type SignupInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"required,phone10"`
}

// Signup registers the account and, on success, makes the returned record
// the new session identity.
func (d *Dispatcher) Signup(ctx context.Context, input SignupInput) error {
	if err := checkInput(input); err != nil {
		return d.fail(ctx, state.OpSignup, 0, err)
	}

	d.store.Dispatch(ctx, state.Request(state.OpSignup))

	result, err := d.api.Signup(ctx, apiclient.SignupForm{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Phone:    input.Phone,
	})
	if err != nil {
		return d.fail(ctx, state.OpSignup, 0, pkgerrors.Normalize(pkgerrors.KindTransport, err))
	}
	if !result.Succeeded() {
		return d.fail(ctx, state.OpSignup, 0, pkgerrors.New(pkgerrors.KindApplication, result.Message))
	}

	return d.establishSession(ctx, state.OpSignup, result)
}

// LoginInput carries a sign-in request.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login exchanges credentials for a session.
func (d *Dispatcher) Login(ctx context.Context, input LoginInput) error {
	if err := checkInput(input); err != nil {
		return d.fail(ctx, state.OpLogin, 0, err)
	}

	d.store.Dispatch(ctx, state.Request(state.OpLogin))

	result, err := d.api.Login(ctx, apiclient.LoginForm{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return d.fail(ctx, state.OpLogin, 0, pkgerrors.Normalize(pkgerrors.KindTransport, err))
	}
	if !result.Succeeded() {
		return d.fail(ctx, state.OpLogin, 0, pkgerrors.New(pkgerrors.KindApplication, result.Message))
	}

	return d.establishSession(ctx, state.OpLogin, result)
}

func (d *Dispatcher) establishSession(ctx context.Context, op state.Op, result apiclient.Result[types.User]) error {
	user := result.Payload
	d.api.SetToken(user.Token)
	d.store.Dispatch(ctx, state.Success(op, user))

	if d.cache != nil {
		if err := d.cache.SaveUser(ctx, user); err != nil && d.logg != nil {
			d.logg.Warn(d.logg.WithUserID(ctx, strconv.FormatInt(user.ID, 10)), "could not persist user to device cache")
		}
	}
	return nil
}

// Logout is synchronous: no network call, session and cart reset, and the
// session epoch advances so late responses from the old session are dropped.
func (d *Dispatcher) Logout(ctx context.Context) {
	d.api.ClearToken()
	d.store.Dispatch(ctx, state.Apply(state.OpLogout, nil))
	if d.cache != nil {
		if err := d.cache.Clear(ctx); err != nil && d.logg != nil {
			d.logg.Warn(ctx, "could not clear device cache on logout")
		}
	}
}

// ProfileInput carries an edit-profile submission; empty fields keep their
// server-side values.
type ProfileInput struct {
	Name    string `json:"name"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" validate:"omitempty,phone10"`
	Address string `json:"address"`
	Pincode string `json:"pincode"`
	Photo   string `json:"photo"`
}

// EditProfile replaces the session user with a merge of the submitted fields
// and the server-returned record. The user id comes from the session when
// present, else from the device cache.
func (d *Dispatcher) EditProfile(ctx context.Context, input ProfileInput) error {
	if err := checkInput(input); err != nil {
		return d.fail(ctx, state.OpEditProfile, 0, err)
	}

	epoch := d.store.Epoch()
	userID := d.sessionUserID()
	if userID == 0 && d.cache != nil {
		cached, err := d.cache.CachedUserID(ctx)
		if err == nil {
			userID = cached
		}
	}
	if userID == 0 {
		return d.fail(ctx, state.OpEditProfile, epoch,
			pkgerrors.New(pkgerrors.KindValidation, "you must be signed in to edit your profile"))
	}

	d.store.Dispatch(ctx, state.Request(state.OpEditProfile).WithEpoch(epoch))

	result, err := d.api.EditProfile(ctx, apiclient.ProfileForm{
		UserID:  userID,
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
		Pincode: input.Pincode,
		Photo:   input.Photo,
	})
	if err != nil {
		return d.fail(ctx, state.OpEditProfile, epoch, pkgerrors.Normalize(pkgerrors.KindTransport, err))
	}
	if !result.Succeeded() {
		return d.fail(ctx, state.OpEditProfile, epoch, pkgerrors.New(pkgerrors.KindApplication, result.Message))
	}

	merged := result.Payload
	if current := d.store.State().Session.User; current != nil {
		merged = current.Merge(result.Payload)
	}
	d.store.Dispatch(ctx, state.Success(state.OpEditProfile, merged).WithEpoch(epoch))

	if d.cache != nil {
		if err := d.cache.SaveUser(ctx, merged); err != nil && d.logg != nil {
			d.logg.Warn(ctx, "could not persist updated profile to device cache")
		}
	}
	return nil
}
