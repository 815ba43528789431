package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeServiceError struct {
	code, message string
}

func (e *fakeServiceError) Error() string        { return e.code + ": " + e.message }
func (e *fakeServiceError) ErrorCode() string    { return e.code }
func (e *fakeServiceError) ErrorMessage() string { return e.message }

func TestClassify_ServiceCodes(t *testing.T) {
	tests := []struct {
		code string
		want Code
	}{
		{"object_not_found", NotFound},
		{"unauthorized", ExternalServiceError},
		{"restricted_resource", ExternalServiceError},
		{"rate_limited", RateLimited},
		{"validation_error", InvalidRequest},
		{"invalid_json", InvalidRequest},
		{"missing_version", InvalidRequest},
		{"service_unavailable", InternalError},
		{"conflict_error", InternalError},
		{"something_new", InternalError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got := Classify(&fakeServiceError{code: tt.code, message: "original"})

			assert.Equal(t, tt.want, got.Code)
			assert.Equal(t, Message(tt.want), got.Message)
			assert.Equal(t, tt.code, got.Details["originalCode"])
			assert.Equal(t, "original", got.Details["originalMessage"])
		})
	}
}

func TestClassify_WrappedServiceError(t *testing.T) {
	err := fmt.Errorf("query database: %w", &fakeServiceError{code: "rate_limited", message: "slow down"})

	got := Classify(err)

	assert.Equal(t, RateLimited, got.Code)
	assert.ErrorIs(t, got, err)
}

func TestClassify_DevelopmentAppendsOriginalMessage(t *testing.T) {
	c := Classifier{Development: true}

	got := c.Classify(&fakeServiceError{code: "object_not_found", message: "Could not find page"})

	assert.Equal(t, Message(NotFound)+" (Could not find page)", got.Message)
}

func TestClassify_GenericError(t *testing.T) {
	got := Classify(errors.New("connection reset"))

	assert.Equal(t, InternalError, got.Code)
	assert.Equal(t, "connection reset", got.Message)
	assert.Nil(t, got.Details)
}

func TestClassify_GenericErrorWithoutMessage(t *testing.T) {
	got := Classify(errors.New(""))

	assert.Equal(t, InternalError, got.Code)
	assert.Equal(t, fallbackMessage, got.Message)
}

func TestClassify_StructuralMap(t *testing.T) {
	got := Classify(map[string]any{"code": "object_not_found", "message": "gone"})
	assert.Equal(t, NotFound, got.Code)

	got = Classify(map[string]any{"status": 500})
	assert.Equal(t, InternalError, got.Code)
	assert.Equal(t, unexpectedMessage, got.Message)
}

func TestClassify_NeverPanics(t *testing.T) {
	var nilService *fakeServiceError
	var nilClassified *Error

	inputs := []any{
		nil,
		"plain string",
		42,
		struct{ Foo string }{"bar"},
		map[string]any{},
		nilClassified,
		error(nilService),
	}

	for _, in := range inputs {
		assert.NotPanics(t, func() {
			got := Classify(in)
			require.NotNil(t, got)
			assert.Equal(t, InternalError, got.Code)
		})
	}
}

func TestClassify_PassesThroughClassified(t *testing.T) {
	orig := New(InvalidRequest, errors.New("page size too large"))

	assert.Same(t, orig, Classify(orig))
	assert.Same(t, orig, Classify(fmt.Errorf("list: %w", orig)))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, NotFound, CodeOf(fmt.Errorf("x: %w", New(NotFound, nil))))
	assert.Equal(t, InternalError, CodeOf(errors.New("boom")))
	assert.True(t, IsNotFound(New(NotFound, nil)))
	assert.False(t, IsNotFound(New(RateLimited, nil)))
}
