package jobscout_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/jobscout"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := jobscout.Errorf(jobscout.EINVALID, "unknown site %q", "monster")

	assert.Equal(t, jobscout.EINVALID, jobscout.ErrorCode(err))
	assert.Equal(t, "unknown site \"monster\"", jobscout.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("registering scraper: %w", jobscout.Errorf(jobscout.EINVALID, "category required"))

	assert.Equal(t, jobscout.EINVALID, jobscout.ErrorCode(err))
	assert.Equal(t, "category required", jobscout.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk I/O error")

	assert.Equal(t, jobscout.EINTERNAL, jobscout.ErrorCode(err))
	assert.Equal(t, "Internal error.", jobscout.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, jobscout.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, jobscout.ErrorMessage(nil))
}
