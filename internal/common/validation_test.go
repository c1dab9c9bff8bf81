package common

import (
	"strings"
	"testing"
)

func TestValidatorErrorJoinsMessages(t *testing.T) {
	v := NewValidator()
	v.Field("owner_id", "", Required)
	v.Field("target_language", "100%wrong", LanguageCode)

	err := v.Error()
	if err == nil {
		t.Fatal("expected a combined error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "owner_id") || !strings.Contains(msg, "target_language") {
		t.Errorf("combined error missing a field: %q", msg)
	}
	// a rejected value containing a percent sign comes through verbatim
	if !strings.Contains(msg, "100%wrong") {
		t.Errorf("literal percent mangled in %q", msg)
	}
}

func TestValidatorPassesCleanInput(t *testing.T) {
	v := NewValidator()
	v.Field("target_language", "pt-BR", LanguageCode)
	if v.HasErrors() {
		t.Fatalf("unexpected validation errors: %v", v.Errors())
	}
	if v.Error() != nil {
		t.Errorf("Error() = %v, want nil", v.Error())
	}
}
