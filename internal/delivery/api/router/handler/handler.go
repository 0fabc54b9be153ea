// Package handler holds the echo handlers of the API.
package handler

import (
	"strconv"

	"feira/internal/delivery/api/response"
	"feira/internal/delivery/api/validator"
	domainerrors "feira/internal/domain/errors"
	"feira/internal/domain/patch"
	"feira/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	msgInvalidBody = "Corpo da requisição inválido."
	msgInvalidID   = "Identificador inválido."
)

// bindAndValidate decodes the request into req and runs its validate tags.
// A non-nil error has already been answered.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, msgInvalidBody)
	}

	if err := c.Validate(req); err != nil {
		return false, validationFailed(c, err)
	}

	return true, nil
}

func validationFailed(c echo.Context, err error) error {
	return response.BadRequestWithDetails(c,
		domainerrors.ErrValidationFailed.ErrorCode(),
		domainerrors.ErrValidationFailed.Message(),
		validator.Details(err),
	)
}

// pathID parses the named path parameter as a UUID.
func pathID(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

func invalidID(c echo.Context) error {
	return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), msgInvalidID)
}

// queryFloat reads an optional float query parameter. An absent or empty
// parameter yields nil.
func queryFloat(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "query parameter %s", name)
	}

	return &v, nil
}

// queryUUID reads an optional UUID query parameter.
func queryUUID(c echo.Context, name string) (*uuid.UUID, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "query parameter %s", name)
	}

	return &id, nil
}

// convertField maps the value of a patch field while keeping its state.
func convertField[A, B any](f patch.Field[A], fn func(A) B) patch.Field[B] {
	if v, ok := f.Get(); ok {
		return patch.Set(fn(v))
	}
	if f.IsNull() {
		return patch.Null[B]()
	}

	return patch.Field[B]{}
}
