package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	paymentIDRe  = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)
	hexAddressRe = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("payment_id", validatePaymentID)
		_ = v.RegisterValidation("hex_address", validateHexAddress)
	}
}

// validatePaymentID requires a 0x-prefixed 32-byte hex identifier.
func validatePaymentID(fl validator.FieldLevel) bool {
	return paymentIDRe.MatchString(fl.Field().String())
}

// validateHexAddress requires a 0x-prefixed 20-byte hex address.
func validateHexAddress(fl validator.FieldLevel) bool {
	return hexAddressRe.MatchString(fl.Field().String())
}
