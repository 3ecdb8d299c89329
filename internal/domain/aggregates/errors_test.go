package aggregates

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorFormatting(t *testing.T) {
	err := NewError(CodeNotFound, "orders.update", "Order does not exist", nil)
	assert.Equal(t, "orders.update: Order does not exist (not_found)", err.Error())
	assert.True(t, IsCode(err, CodeNotFound))
	assert.Equal(t, CodeNotFound, CodeOf(fmt.Errorf("outer: %w", err)))
	assert.Equal(t, ErrorCode(""), CodeOf(errors.New("plain")))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(CodeInternal, "op", nil))
}

func TestDescribeFlattensCauses(t *testing.T) {
	root := errors.New("UNIQUE constraint failed: customers.non_roamable_id")
	wrapped := Wrap(CodeConflict, "customers.add", fmt.Errorf("insert customer: %w", root))

	got := Describe(wrapped)
	assert.Equal(t, "insert customer: UNIQUE constraint failed: customers.non_roamable_id", got)
}

func TestDescribeJoinedValidationMessages(t *testing.T) {
	err := NewError(CodeValidation, "products.add", "validation failed",
		errors.Join(errors.New("Title is required"), errors.New("ListPrice must not be negative")))

	assert.Equal(t, "validation failed\nTitle is required\nListPrice must not be negative", Describe(err))
}

func TestDescribeNil(t *testing.T) {
	assert.Equal(t, "", Describe(nil))
}
