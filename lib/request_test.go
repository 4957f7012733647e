package lib

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name  string `json:"name" validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
	Count int    `json:"count" validate:"omitempty,min=1"`
}

func TestExtractAndValidateBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/", bytes.NewBufferString(`{"name":"Rose","email":"rose@example.com"}`))

	body, err := ExtractAndValidateBody[sampleRequest](req)
	require.NoError(t, err)
	assert.Equal(t, "Rose", body.Name)
	assert.Equal(t, "rose@example.com", body.Email)
}

func TestExtractAndValidateBodyRejectsUnknownFields(t *testing.T) {
	req := httptest.NewRequest("POST", "/", bytes.NewBufferString(`{"name":"Rose","email":"rose@example.com","admin":true}`))

	_, err := ExtractAndValidateBody[sampleRequest](req)
	assert.Error(t, err)
}

func TestExtractAndValidateBodyRejectsMalformedJSON(t *testing.T) {
	req := httptest.NewRequest("POST", "/", bytes.NewBufferString(`{"name":`))

	_, err := ExtractAndValidateBody[sampleRequest](req)
	assert.Error(t, err)
}

func TestExtractAndValidateBodyFieldErrors(t *testing.T) {
	req := httptest.NewRequest("POST", "/", bytes.NewBufferString(`{"name":"R","email":"not-an-email"}`))

	_, err := ExtractAndValidateBody[sampleRequest](req)
	require.Error(t, err)

	ve, ok := err.(*ValidationError)
	require.True(t, ok, "expected a *ValidationError, got %T", err)
	require.Len(t, ve.Errors, 2)

	byField := map[string]string{}
	for _, fe := range ve.Errors {
		byField[fe.Field] = fe.Message
	}
	assert.Equal(t, "must be at least 2", byField["name"])
	assert.Equal(t, "must be a valid email address", byField["email"])
}
