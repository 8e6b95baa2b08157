package services

import "testing"

func validSignup() SignupInput {
	return SignupInput{
		FirstName:     "Asha",
		LastName:      "Rao",
		Email:         "asha@example.com",
		ContactNumber: "9998887776",
		Password:      "Sup3r#secret",
	}
}

func TestSignup(t *testing.T) {
	env := newTestEnv(t)

	customer, err := env.customerSvc.Signup(validSignup())
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if customer.UUID == "" {
		t.Error("expected a generated customer id")
	}
	if customer.Password == "Sup3r#secret" || customer.Salt == "" {
		t.Error("password must be stored hashed with a salt")
	}
}

func TestSignupLastNameOptional(t *testing.T) {
	env := newTestEnv(t)

	in := validSignup()
	in.LastName = ""
	if _, err := env.customerSvc.Signup(in); err != nil {
		t.Fatalf("signup without last name should succeed: %v", err)
	}
}

func TestSignupValidationOrder(t *testing.T) {
	env := newTestEnv(t)
	env.createCustomer(t, "9998887776", "Sup3r#secret")

	cases := []struct {
		name   string
		mutate func(*SignupInput)
		code   string
	}{
		{"missing first name", func(in *SignupInput) { in.FirstName = "" }, "SGR-005"},
		{"missing email", func(in *SignupInput) { in.Email = "" }, "SGR-005"},
		{"missing contact", func(in *SignupInput) { in.ContactNumber = "" }, "SGR-005"},
		{"missing password", func(in *SignupInput) { in.Password = "" }, "SGR-005"},
		{"duplicate contact", func(in *SignupInput) {}, "SGR-001"},
		// duplicate wins over later checks regardless of other fields
		{"duplicate contact bad email", func(in *SignupInput) { in.Email = "broken" }, "SGR-001"},
		{"bad email", func(in *SignupInput) { in.ContactNumber = "8887776665"; in.Email = "broken" }, "SGR-002"},
		{"bad contact", func(in *SignupInput) { in.ContactNumber = "123" }, "SGR-003"},
		{"weak password", func(in *SignupInput) { in.ContactNumber = "8887776665"; in.Password = "weak" }, "SGR-004"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validSignup()
			tc.mutate(&in)
			_, err := env.customerSvc.Signup(in)
			wantCode(t, err, tc.code)
		})
	}
}

func TestUpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t, "9998887776", "Sup3r#secret")

	updated, err := env.customerSvc.UpdateProfile(customer, "Anita", "Sharma")
	if err != nil {
		t.Fatalf("update profile failed: %v", err)
	}
	if updated.FirstName != "Anita" || updated.LastName != "Sharma" {
		t.Errorf("got %s %s", updated.FirstName, updated.LastName)
	}

	_, err = env.customerSvc.UpdateProfile(customer, "", "Sharma")
	wantCode(t, err, "UCR-002")
}

func TestUpdatePassword(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t, "9998887776", "Sup3r#secret")

	_, err := env.customerSvc.UpdatePassword(customer, "", "N3w#secret")
	wantCode(t, err, "UCR-003")

	_, err = env.customerSvc.UpdatePassword(customer, "Sup3r#secret", "")
	wantCode(t, err, "UCR-003")

	_, err = env.customerSvc.UpdatePassword(customer, "Sup3r#secret", "weak")
	wantCode(t, err, "UCR-001")

	_, err = env.customerSvc.UpdatePassword(customer, "wrong#Pass1", "N3w#secret")
	wantCode(t, err, "UCR-004")

	oldSalt := customer.Salt
	updated, err := env.customerSvc.UpdatePassword(customer, "Sup3r#secret", "N3w#secret")
	if err != nil {
		t.Fatalf("update password failed: %v", err)
	}
	if updated.Salt == oldSalt {
		t.Error("password change should use a fresh salt")
	}

	// the new password logs in, the old one does not
	if _, err := env.authSvc.Login("9998887776", "N3w#secret"); err != nil {
		t.Errorf("new password should log in: %v", err)
	}
	_, err = env.authSvc.Login("9998887776", "Sup3r#secret")
	wantCode(t, err, "ATH-002")
}
