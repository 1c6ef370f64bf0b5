package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestReferencedError(t *testing.T) {
	violation := fmt.Errorf("delete regions: %w", gorm.ErrForeignKeyViolated)
	err := referencedError(violation, "region", 4)
	assert.ErrorIs(t, err, ErrHasDependents)
	assert.ErrorIs(t, err, gorm.ErrForeignKeyViolated)

	other := errors.New("connection reset")
	assert.Equal(t, other, referencedError(other, "region", 4))
	assert.NoError(t, referencedError(nil, "region", 4))
}
