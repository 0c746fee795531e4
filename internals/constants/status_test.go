package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEnrollStatus(t *testing.T) {
	assert.True(t, IsValidEnrollStatus(EnrollStatusJoin))
	assert.True(t, IsValidEnrollStatus(EnrollStatusScanned))
	assert.True(t, IsValidEnrollStatus(EnrollStatusAttended))
	assert.True(t, IsValidEnrollStatus(EnrollStatusRejected))

	assert.False(t, IsValidEnrollStatus(""))
	assert.False(t, IsValidEnrollStatus("join"))
	assert.False(t, IsValidEnrollStatus("DONE"))
}
