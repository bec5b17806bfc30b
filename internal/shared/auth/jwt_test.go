package auth

import "testing"

func TestIssueAndVerifyAccess(t *testing.T) {
	signer := NewSigner("test-secret")

	pair, err := signer.IssuePair("user-1", "a@example.com", "Ada")
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected non-empty tokens")
	}

	claims, err := signer.VerifyAccess(pair.AccessToken)
	if err != nil {
		t.Fatalf("VerifyAccess: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Errorf("subject = %q, want user-1", claims.Subject)
	}
	if claims.Email != "a@example.com" {
		t.Errorf("email = %q, want a@example.com", claims.Email)
	}
}

func TestVerifyAccessRejectsRefreshToken(t *testing.T) {
	signer := NewSigner("test-secret")

	pair, err := signer.IssuePair("user-1", "a@example.com", "Ada")
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}
	if _, err := signer.VerifyAccess(pair.RefreshToken); err == nil {
		t.Fatalf("expected refresh token to fail access verification")
	}
}

func TestRefreshIssuesNewPair(t *testing.T) {
	signer := NewSigner("test-secret")

	pair, err := signer.IssuePair("user-1", "a@example.com", "Ada")
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}

	renewed, err := signer.Refresh(pair.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	claims, err := signer.VerifyAccess(renewed.AccessToken)
	if err != nil {
		t.Fatalf("VerifyAccess after refresh: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Errorf("subject = %q, want user-1", claims.Subject)
	}

	if _, err := signer.Refresh(pair.AccessToken); err == nil {
		t.Fatalf("expected access token to fail refresh")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signer := NewSigner("secret-a")
	other := NewSigner("secret-b")

	pair, err := signer.IssuePair("user-1", "", "")
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}
	if _, err := other.VerifyAccess(pair.AccessToken); err == nil {
		t.Fatalf("expected token signed with other secret to fail")
	}
}
