package services

import (
	"encoding/base64"
	"testing"
	"time"
)

func TestLoginIssuesValidatableToken(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t, "9998887776", "Sup3r#secret")

	auth, err := env.authSvc.Login("9998887776", "Sup3r#secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if auth.AccessToken == "" {
		t.Fatal("expected a non-empty access token")
	}

	validated, err := env.authSvc.ValidateToken(auth.AccessToken)
	if err != nil {
		t.Fatalf("freshly issued token should validate: %v", err)
	}
	if validated.Customer.UUID != customer.UUID {
		t.Errorf("token bound to %s, want %s", validated.Customer.UUID, customer.UUID)
	}
}

func TestLoginFailures(t *testing.T) {
	env := newTestEnv(t)
	env.createCustomer(t, "9998887776", "Sup3r#secret")

	_, err := env.authSvc.Login("1112223334", "Sup3r#secret")
	wantCode(t, err, "ATH-001")

	_, err = env.authSvc.Login("9998887776", "wrong#Pass1")
	wantCode(t, err, "ATH-002")
}

func TestLoginAllowsMultipleSessions(t *testing.T) {
	env := newTestEnv(t)
	env.createCustomer(t, "9998887776", "Sup3r#secret")

	first, err := env.authSvc.Login("9998887776", "Sup3r#secret")
	if err != nil {
		t.Fatalf("first login failed: %v", err)
	}
	second, err := env.authSvc.Login("9998887776", "Sup3r#secret")
	if err != nil {
		t.Fatalf("second login failed: %v", err)
	}
	if first.AccessToken == second.AccessToken {
		t.Fatal("each login should issue a distinct token")
	}
	// the earlier session stays live
	if _, err := env.authSvc.ValidateToken(first.AccessToken); err != nil {
		t.Errorf("first session should still validate: %v", err)
	}
}

func TestValidateTokenKinds(t *testing.T) {
	env := newTestEnv(t)
	env.createCustomer(t, "9998887776", "Sup3r#secret")

	_, err := env.authSvc.ValidateToken("no-such-token")
	wantCode(t, err, "ATHR-001")

	auth, err := env.authSvc.Login("9998887776", "Sup3r#secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if _, err := env.authSvc.Logout(auth.AccessToken); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	// revoked is signed-out, not expired
	_, err = env.authSvc.ValidateToken(auth.AccessToken)
	wantCode(t, err, "ATHR-002")

	expired, err := env.authSvc.Login("9998887776", "Sup3r#secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	expired.ExpiresAt = time.Now().Add(-time.Minute)
	if err := env.db.Save(expired).Error; err != nil {
		t.Fatalf("expire session: %v", err)
	}
	_, err = env.authSvc.ValidateToken(expired.AccessToken)
	wantCode(t, err, "ATHR-003")
}

func TestLogoutIsNotRepeatable(t *testing.T) {
	env := newTestEnv(t)
	env.createCustomer(t, "9998887776", "Sup3r#secret")

	auth, err := env.authSvc.Login("9998887776", "Sup3r#secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if _, err := env.authSvc.Logout(auth.AccessToken); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	_, err = env.authSvc.Logout(auth.AccessToken)
	wantCode(t, err, "ATHR-001")

	_, err = env.authSvc.Logout("no-such-token")
	wantCode(t, err, "ATHR-001")
}

func TestBearerToken(t *testing.T) {
	env := newTestEnv(t)

	token, err := env.authSvc.BearerToken("Bearer abc.def.ghi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "abc.def.ghi" {
		t.Errorf("got token %q", token)
	}

	for _, header := range []string{"", "abc.def.ghi", "Bearer ", "Basic abc"} {
		_, err := env.authSvc.BearerToken(header)
		wantCode(t, err, "ATH-005")
	}
}

func TestBasicCredentials(t *testing.T) {
	env := newTestEnv(t)

	header := "Basic " + base64.StdEncoding.EncodeToString([]byte("9998887776:Sup3r#secret"))
	contact, password, err := env.authSvc.BasicCredentials(header)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contact != "9998887776" || password != "Sup3r#secret" {
		t.Errorf("got %q / %q", contact, password)
	}

	bad := []string{
		"",
		"Bearer abc",
		"Basic not-base64!!",
		"Basic " + base64.StdEncoding.EncodeToString([]byte("no-separator")),
	}
	for _, header := range bad {
		_, _, err := env.authSvc.BasicCredentials(header)
		wantCode(t, err, "ATH-003")
	}
}
