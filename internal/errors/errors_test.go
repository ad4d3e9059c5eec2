package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsCodeAndField(t *testing.T) {
	base := MissingColumn("age")
	wrapped := Wrap(base, "failed to build survey table")

	assert.Equal(t, CodeMissingColumn, GetCode(wrapped))
	assert.Equal(t, "age", GetField(wrapped))
	assert.Contains(t, wrapped.Error(), `required column "age" is missing`)
}

func TestWrapPlainError(t *testing.T) {
	wrapped := Wrapf(fmt.Errorf("disk gone"), "reading %s", "pulse39.csv")

	assert.Equal(t, CodeInternalError, GetCode(wrapped))
	assert.Equal(t, "reading pulse39.csv: disk gone", wrapped.Error())
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "nothing"))
	assert.Nil(t, Wrapf(nil, "nothing %d", 1))
}

func TestGetCodeThroughFmtWrap(t *testing.T) {
	err := fmt.Errorf("outer: %w", InvalidRange("age", "min is not a number"))

	assert.True(t, IsAppError(err))
	assert.Equal(t, CodeInvalidRange, GetCode(err))
	assert.Equal(t, "UNKNOWN", GetCode(fmt.Errorf("plain")))
}

func TestInvalidValueMessage(t *testing.T) {
	err := InvalidValue("age", 12, "forty")
	assert.Equal(t, `invalid value "forty" for field "age" at row 12`, err.Error())
	assert.Equal(t, "age", err.Field)
}
