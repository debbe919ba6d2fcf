package sitechat_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/sitechat"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := sitechat.Errorf(sitechat.ENOTFOUND, "index %q not found", "site_index.json")

	assert.Equal(t, sitechat.ENOTFOUND, sitechat.ErrorCode(err))
	assert.Equal(t, "index \"site_index.json\" not found", sitechat.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, sitechat.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, sitechat.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("loading: %w", sitechat.Errorf(sitechat.EINVALID, "bad index"))

	assert.Equal(t, sitechat.EINVALID, sitechat.ErrorCode(err))
	assert.Equal(t, "bad index", sitechat.ErrorMessage(err))
}

func TestErrorCode_PlainError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk on fire")

	assert.Equal(t, sitechat.EINTERNAL, sitechat.ErrorCode(err))
	assert.Equal(t, "Internal error.", sitechat.ErrorMessage(err))
}
