package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	cause := errors.New("connection reset")

	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "object not found",
			err:      errs.NewObjectNotFoundError("packageId", "550e8400"),
			sentinel: errs.ErrObjectNotFound,
			message:  "object not found: 550e8400",
		},
		{
			name:     "object not found with cause",
			err:      errs.NewObjectNotFoundErrorWithCause("senderId", "42", cause),
			sentinel: errs.ErrObjectNotFound,
			message:  "object not found: param is: senderId, ID is: 42 (cause: connection reset)",
		},
		{
			name:     "value is invalid",
			err:      errs.NewValueIsInvalidError("trackingNumber"),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: trackingNumber",
		},
		{
			name:     "value is invalid with cause",
			err:      errs.NewValueIsInvalidErrorWithCause("packageId", cause),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: packageId (cause: connection reset)",
		},
		{
			name:     "value is out of range",
			err:      errs.NewValueIsOutOfRangeError("status", 9, 0, 4),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: 9 is status, min value is 0, max value is 4",
		},
		{
			name:     "value is out of range with cause",
			err:      errs.NewValueIsOutOfRangeErrorWithCause("status", -2, 0, 4, cause),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: -2 is status, min value is 0, max value is 4 (cause: connection reset)",
		},
		{
			name:     "value is required",
			err:      errs.NewValueIsRequiredError("recipient"),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: recipient",
		},
		{
			name:     "value is required with cause",
			err:      errs.NewValueIsRequiredErrorWithCause("sender", cause),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: sender (cause: connection reset)",
		},
		{
			name:     "version is invalid",
			err:      errs.NewVersionIsInvalidError("package"),
			sentinel: errs.ErrVersionIsInvalid,
			message:  "version is invalid: package",
		},
		{
			name:     "version is invalid with cause",
			err:      errs.NewVersionIsInvalidErrorWithCause("package", cause),
			sentinel: errs.ErrVersionIsInvalid,
			message:  "version is invalid: package (cause: connection reset)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.message, tt.err.Error())
			require.ErrorIs(t, tt.err, tt.sentinel)
			require.ErrorIs(t, fmt.Errorf("wrapped: %w", tt.err), tt.sentinel)
		})
	}
}

func TestObjectNotFoundError_Fields(t *testing.T) {
	err := errs.NewObjectNotFoundError("packageId", 7)

	assert.Equal(t, "packageId", err.ParamName)
	assert.Equal(t, 7, err.ID)
	assert.NoError(t, err.Cause)
	assert.Equal(t, "object not found: %!s(int=7)", err.Error())
}

func TestValueIsOutOfRangeError_SanitizesValue(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("trackingNumber", "TRK\n123", 1, 50)

	assert.Contains(t, err.Error(), "TRK 123")
	assert.NotContains(t, err.Error(), "\n")
}

func TestVersionIsInvalidError_As(t *testing.T) {
	cause := errors.New("serialization failure")
	wrapped := fmt.Errorf("apply status: %w", errs.NewVersionIsInvalidErrorWithCause("package", cause))

	var versionErr *errs.VersionIsInvalidError
	require.ErrorAs(t, wrapped, &versionErr)
	assert.Equal(t, "package", versionErr.ParamName)
	assert.Equal(t, cause, versionErr.Cause)
}

func TestSentinels(t *testing.T) {
	sentinels := map[error]string{
		errs.ErrObjectNotFound:    "object not found",
		errs.ErrValueIsInvalid:    "value is invalid",
		errs.ErrValueIsOutOfRange: "value is out of range",
		errs.ErrValueIsRequired:   "value is required",
		errs.ErrVersionIsInvalid:  "version is invalid",
	}

	for sentinel, message := range sentinels {
		assert.EqualError(t, sentinel, message)
	}
	assert.NotErrorIs(t, errs.NewValueIsInvalidError("x"), errs.ErrValueIsRequired)
}
