package object

import (
	"strings"
	"testing"
)

func TestBuildKeyUsesUserPrefix(t *testing.T) {
	key, err := BuildKey("user-1", "resume.pdf")
	if err != nil {
		t.Fatalf("BuildKey: %v", err)
	}
	if !strings.HasPrefix(key, "user-1/") {
		t.Errorf("key %q should start with user-1/", key)
	}
	if !strings.HasSuffix(key, ".pdf") {
		t.Errorf("key %q should keep the extension", key)
	}
}

func TestBuildKeyRejectsBadInput(t *testing.T) {
	if _, err := BuildKey("", "resume.pdf"); err == nil {
		t.Errorf("expected error for empty user id")
	}
	if _, err := BuildKey("a/b", "resume.pdf"); err == nil {
		t.Errorf("expected error for user id with separator")
	}
	if _, err := BuildKey("user-1", "../../etc/passwd"); err == nil {
		t.Errorf("expected error for traversal file name")
	}
}

func TestCheckOwnership(t *testing.T) {
	if err := CheckOwnership("user-1", "user-1/123.pdf"); err != nil {
		t.Errorf("owner access rejected: %v", err)
	}
	if err := CheckOwnership("user-2", "user-1/123.pdf"); err == nil {
		t.Errorf("cross-user access allowed")
	}
	if err := CheckOwnership("user-1", "../user-1/123.pdf"); err == nil {
		t.Errorf("traversal key allowed")
	}
	if err := CheckOwnership("user-1", "123.pdf"); err == nil {
		t.Errorf("key without user prefix allowed")
	}
	if err := CheckOwnership("", "/123.pdf"); err == nil {
		t.Errorf("empty user id allowed")
	}
}
