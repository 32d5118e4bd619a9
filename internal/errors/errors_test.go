package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenhall/homebrew-api/internal/errors"
)

func TestError_Error(t *testing.T) {
	err := errors.NotFound("content not found")
	assert.Equal(t, "NOT_FOUND: content not found", err.Error())

	wrapped := errors.Wrap(fmt.Errorf("dial tcp: refused"), "failed to load content")
	assert.Equal(t, errors.CodeInternal, wrapped.Code)
	assert.Contains(t, wrapped.Error(), "dial tcp: refused")
}

func TestWrap_PreservesCode(t *testing.T) {
	inner := errors.InvalidArgument("level must be between 1 and 20")
	outer := errors.Wrap(inner, "failed to score content")

	assert.Equal(t, errors.CodeInvalidArgument, outer.Code)
	assert.True(t, errors.IsInvalidArgument(outer))
}

func TestWrap_Nil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, "ignored"))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, errors.CodeOK, errors.GetCode(nil))
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(errors.NotFound("missing")))
	assert.Equal(t, errors.CodeInternal, errors.GetCode(fmt.Errorf("plain error")))
}

func TestIsNotFound(t *testing.T) {
	err := errors.NotFoundf("content with ID %s not found", "content_123")
	assert.True(t, errors.IsNotFound(err))
	assert.False(t, errors.IsNotFound(errors.Internal("boom")))

	// survives wrapping
	assert.True(t, errors.IsNotFound(errors.Wrap(err, "lookup failed")))
}

func TestCode_HTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, errors.CodeInvalidArgument.HTTPStatus())
	assert.Equal(t, http.StatusNotFound, errors.CodeNotFound.HTTPStatus())
	assert.Equal(t, http.StatusConflict, errors.CodeAlreadyExists.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, errors.CodeInternal.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, errors.Code("BOGUS").HTTPStatus())
}

func TestValidationBuilder(t *testing.T) {
	err := errors.NewValidationBuilder().Build()
	require.NoError(t, err)

	vb := errors.NewValidationBuilder()
	vb.RequiredField("Engine")
	vb.Fieldf("level", "must be between %d and %d", 1, 20)
	err = vb.Build()
	require.Error(t, err)

	var structured *errors.Error
	require.True(t, errors.As(err, &structured))
	assert.Equal(t, errors.CodeInvalidArgument, structured.Code)
	assert.Contains(t, structured.Meta, "validation_errors")
}

func TestValidateEnum(t *testing.T) {
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("power_level", "mythic", []string{"low", "standard", "high", "epic"}, vb)
	require.Error(t, vb.Build())

	vb = errors.NewValidationBuilder()
	errors.ValidateEnum("power_level", "epic", []string{"low", "standard", "high", "epic"}, vb)
	require.NoError(t, vb.Build())
}
