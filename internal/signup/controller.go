// Package signup validates signup requests and hands valid ones to account
// creation. It knows nothing about the wire format; transports translate to
// and from Request and Response.
package signup

import (
	"context"
	"fmt"
	"math"
	"signup/pkg/domain"
	"signup/pkg/logger"

	"go.uber.org/zap"
)

// Field names of a signup request body.
const (
	FieldUsername             = "username"
	FieldEmail                = "email"
	FieldPassword             = "password"
	FieldPasswordConfirmation = "passwordConfirmation"

	// ParamPasswordConfirmation is reported when the passwords differ.
	ParamPasswordConfirmation = "passwordConfirmationError"
)

// RequiredFields lists the fields of a signup request in the order they are
// checked.
var RequiredFields = []string{ //nolint: gochecknoglobals
	FieldUsername,
	FieldEmail,
	FieldPassword,
	FieldPasswordConfirmation,
}

// Controller handles signup requests. It keeps no per-request state and is
// safe for concurrent use when its collaborators are.
type Controller struct {
	emailValidator EmailValidator
	addAccount     AddAccount
}

func New(emailValidator EmailValidator, addAccount AddAccount) *Controller {
	return &Controller{
		emailValidator: emailValidator,
		addAccount:     addAccount,
	}
}

// Handle validates req and creates the account.
//
// Checks run in a fixed order and the first failure is returned:
//  1. every required field is present, else 400 MissingParamError
//  2. every required field is a string, else 400 InvalidParamError
//  3. password equals its confirmation, else 400 InvalidParamError
//  4. the email validator accepts the email, else 400 InvalidParamError
//
// Any error or panic from a collaborator yields 500 ServerError.
func (c *Controller) Handle(ctx context.Context, req Request) (res Response) {
	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "signup collaborator panicked", zap.Any("panic", p))
			res = serverError()
		}
	}()

	for _, field := range RequiredFields {
		if !isPresent(req.Body[field]) {
			return badRequest(NewMissingParamError(field))
		}
	}

	values := make(map[string]string, len(RequiredFields))
	for _, field := range RequiredFields {
		s, isString := req.Body[field].(string)
		if !isString {
			return badRequest(NewInvalidParamError(field))
		}
		values[field] = s
	}

	if values[FieldPassword] != values[FieldPasswordConfirmation] {
		return badRequest(NewInvalidParamError(ParamPasswordConfirmation))
	}

	valid, err := c.emailValidator.IsValid(values[FieldEmail])
	if err != nil {
		logger.Error(ctx, "could not validate email", zap.Error(err))

		return serverError()
	}
	if !valid {
		return badRequest(NewInvalidParamError(FieldEmail))
	}

	account, err := c.addAccount.Add(ctx, domain.AddAccountInput{
		Username: values[FieldUsername],
		Email:    values[FieldEmail],
		Password: values[FieldPassword],
	})
	if err != nil {
		logger.Error(ctx, "could not add account", zap.Error(err))

		return serverError()
	}
	if account != nil {
		logger.Debug(ctx, "account created", zap.Stringer("accountID", account.ID))
	}

	return ok()
}

// isPresent treats nil, empty strings, false and numeric zero (or NaN) as
// missing.
func isPresent(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case float64:
		return v != 0 && !math.IsNaN(v)
	case float32:
		return v != 0 && !math.IsNaN(float64(v))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(v) != "0"
	default:
		return true
	}
}
