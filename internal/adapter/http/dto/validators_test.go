package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentIDPattern(t *testing.T) {
	valid := "0x" + "ab12" + "cd34" + "ef56" + "0789" + "ab12" + "cd34" + "ef56" + "0789" +
		"ab12" + "cd34" + "ef56" + "0789" + "ab12" + "cd34" + "ef56" + "0789"
	assert.True(t, paymentIDRe.MatchString(valid))

	for _, bad := range []string{
		"",
		"0x1234",
		"ab12cd34",
		valid + "00",
		"0x" + "zz12cd34ef560789ab12cd34ef560789ab12cd34ef560789ab12cd34ef560789",
	} {
		assert.False(t, paymentIDRe.MatchString(bad), "should reject %q", bad)
	}
}

func TestHexAddressPattern(t *testing.T) {
	assert.True(t, hexAddressRe.MatchString("0xAAaAaAaaAaAaAaaAaAAAAAAAAaaaAaAaAaaAaaAA"))
	assert.True(t, hexAddressRe.MatchString("0x0000000000000000000000000000000000000001"))

	for _, bad := range []string{
		"",
		"0x01",
		"0000000000000000000000000000000000000001",
		"0x00000000000000000000000000000000000000011",
	} {
		assert.False(t, hexAddressRe.MatchString(bad), "should reject %q", bad)
	}
}
