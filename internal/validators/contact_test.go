package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "41999990000", NormalizePhone("(41) 99999-0000"))
	assert.Equal(t, "", NormalizePhone("abc"))
}

func TestIsPhoneValid(t *testing.T) {
	assert.True(t, IsPhoneValid("(41) 3333-0000"))
	assert.True(t, IsPhoneValid("41999990000"))
	assert.True(t, IsPhoneValid(PlaceholderPhone))
	assert.False(t, IsPhoneValid("999990000"))
	assert.False(t, IsPhoneValid("+55 41 99999-0000"))
}

func TestIsEmailValid(t *testing.T) {
	assert.True(t, IsEmailValid("maria.silva@email.com"))
	assert.False(t, IsEmailValid("maria.silva"))
	assert.False(t, IsEmailValid(""))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "contato@bomfio.com", NormalizeEmail("  Contato@BomFio.com "))
}
