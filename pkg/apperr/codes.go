package apperr

// Signup (SGR)
func DuplicateContact() *Error {
	return BadRequest("SGR-001", "This contact number is already registered! Try other contact number.")
}
func InvalidEmail() *Error { return BadRequest("SGR-002", "Invalid email-id format!") }
func InvalidContact() *Error { return BadRequest("SGR-003", "Invalid contact number!") }
func WeakPassword() *Error { return BadRequest("SGR-004", "Weak password!") }
func MissingSignupFields() *Error {
	return BadRequest("SGR-005", "Except last name all fields should be filled")
}

// Authentication (ATH)
func UnknownContact() *Error {
	return Unauthenticated("ATH-001", "This contact number has not been registered!")
}
func InvalidCredentials() *Error { return Unauthenticated("ATH-002", "Invalid Credentials") }
func MalformedBasicHeader() *Error {
	return Unauthenticated("ATH-003", "Incorrect format of decoded customer name and password")
}
func MalformedBearerHeader() *Error {
	return Unauthenticated("ATH-005", "Use format: 'Bearer accessToken'")
}

// Authorization (ATHR) — each sub-kind is distinct so callers can tell
// "never logged in" from "logged out" from "expired".
func NotSignedIn() *Error { return Forbidden("ATHR-001", "Customer is not Logged in.") }
func SignedOut() *Error {
	return Forbidden("ATHR-002", "Customer is logged out. Log in again to access this endpoint.")
}
func SessionExpired() *Error {
	return Forbidden("ATHR-003", "Your session is expired. Log in again to access this endpoint.")
}
func NotOwner() *Error {
	return Forbidden("ATHR-004", "You are not authorized to view/update/delete any one else's address")
}

// Customer update (UCR)
func WeakNewPassword() *Error { return BadRequest("UCR-001", "Weak password entered!") }
func EmptyFirstName() *Error { return BadRequest("UCR-002", "First name field should not be empty") }
func EmptyPasswordField() *Error { return BadRequest("UCR-003", "No field should be empty") }
func WrongOldPassword() *Error { return BadRequest("UCR-004", "Incorrect old password!") }

// Coupon (CPF)
func CouponNotFoundByName() *Error { return NotFound("CPF-001", "No coupon by this name") }
func EmptyCouponName() *Error {
	return BadRequest("CPF-002", "Coupon name field should not be empty")
}
func CouponNotFoundByID() *Error { return NotFound("CPF-002", "No coupon by this id") }

// Payment (PNF)
func PaymentNotFound() *Error { return NotFound("PNF-002", "No payment method found by this id") }

// Address and state (ANF, SAR)
func StateNotFound() *Error { return NotFound("ANF-002", "No state by this id") }
func AddressNotFound() *Error { return NotFound("ANF-003", "No address by this id") }
func EmptyAddressID() *Error { return BadRequest("ANF-005", "Address id can not be empty") }
func MissingAddressFields() *Error {
	return BadRequest("SAR-001", "No field can be empty")
}
func InvalidPincode() *Error { return BadRequest("SAR-002", "Invalid pincode") }

// Restaurant (RNF)
func RestaurantNotFound() *Error { return NotFound("RNF-001", "No restaurant by this id") }
func EmptyRestaurantID() *Error {
	return BadRequest("RNF-002", "Restaurant id field should not be empty")
}
func EmptyRestaurantName() *Error {
	return BadRequest("RNF-003", "Restaurant name field should not be empty")
}

// Category (CNF)
func EmptyCategoryID() *Error {
	return BadRequest("CNF-001", "Category id field should not be empty")
}
func CategoryNotFound() *Error { return NotFound("CNF-002", "No category by this id") }

// Item (INF)
func ItemNotFound() *Error { return NotFound("INF-003", "No item by this id") }

// Rating (IRE)
func InvalidRating() *Error {
	return BadRequest("IRE-001", "Rating should be in the range of 1 to 5")
}
