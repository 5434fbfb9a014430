package actions

import (
	"context"

	"github.com/grocerly/appcore/internal/apiclient"
	"github.com/grocerly/appcore/internal/state"
	pkgerrors "github.com/grocerly/appcore/pkg/errors"
)

// ContactInput carries a contact-form submission.
type ContactInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,phone10"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required,min=10"`
}

// SubmitContactForm validates then posts a contact message. The boolean tells
// the caller whether the submission actually reached the server, so a
// validation failure never shows a "thanks, we got it" screen.
func (d *Dispatcher) SubmitContactForm(ctx context.Context, input ContactInput) (bool, error) {
	if err := checkInput(input); err != nil {
		return false, d.fail(ctx, state.OpSubmitContact, 0, err)
	}

	d.store.Dispatch(ctx, state.Request(state.OpSubmitContact))

	result, err := d.api.SubmitContact(ctx, apiclient.ContactSubmission{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Subject: input.Subject,
		Message: input.Message,
	})
	if err != nil {
		return false, d.fail(ctx, state.OpSubmitContact, 0, pkgerrors.Normalize(pkgerrors.KindTransport, err))
	}
	if !result.Succeeded() {
		return false, d.fail(ctx, state.OpSubmitContact, 0, pkgerrors.New(pkgerrors.KindApplication, result.Message))
	}

	d.store.Dispatch(ctx, state.Success(state.OpSubmitContact, result.Message))
	return true, nil
}
