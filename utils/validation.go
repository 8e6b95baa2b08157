package utils

import (
	"regexp"
)

var (
	emailRe   = regexp.MustCompile(`^[A-Za-z0-9]+@[A-Za-z0-9]+\.[A-Za-z0-9]{2,7}$`)
	contactRe = regexp.MustCompile(`^\d{10}$`)
	pincodeRe = regexp.MustCompile(`^\d{6}$`)

	passwordDigit   = regexp.MustCompile(`[0-9]`)
	passwordLower   = regexp.MustCompile(`[a-z]`)
	passwordUpper   = regexp.MustCompile(`[A-Z]`)
	passwordSpecial = regexp.MustCompile(`[#@$%&*!^]`)
)

func IsBlank(value string) bool { return value == "" }

func IsValidEmail(email string) bool { return emailRe.MatchString(email) }

func IsValidContactNumber(contact string) bool { return contactRe.MatchString(contact) }

func IsValidPincode(pincode string) bool { return pincodeRe.MatchString(pincode) }

// IsWeakPassword reports whether the password misses the policy: at least 8
// characters with a digit, a lowercase letter, an uppercase letter and one of
// #@$%&*!^.
func IsWeakPassword(password string) bool {
	if len(password) < 8 {
		return true
	}
	return !(passwordDigit.MatchString(password) &&
		passwordLower.MatchString(password) &&
		passwordUpper.MatchString(password) &&
		passwordSpecial.MatchString(password))
}
