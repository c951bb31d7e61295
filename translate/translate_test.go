package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	Use(DEFAULT_LOCALE)
	assert.Equal("ldr: invalid operand", From("ldr: %v", "invalid operand"))
	assert.Equal("word 0x00ff", From("word 0x%04x", 0xff))
}

func TestUse(t *testing.T) {
	assert := assert.New(t)

	Use()
	assert.NotNil(printer)
	assert.Equal("r3", From("r%v", 3))

	Use("xx-unknown", DEFAULT_LOCALE)
	assert.Equal("sp", From("%s", "sp"))

	Use(DEFAULT_LOCALE)
}
