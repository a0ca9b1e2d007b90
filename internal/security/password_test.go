package security

import (
	"encoding/base64"
	"testing"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	record, err := HashPassword("Correct-Horse-9")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	if !VerifyPassword(record, "Correct-Horse-9") {
		t.Fatal("expected matching password to verify")
	}
	if VerifyPassword(record, "Correct-Horse-8") {
		t.Fatal("expected non-matching password to fail verification")
	}
	if VerifyPassword(record, "") {
		t.Fatal("expected empty password to fail verification")
	}
}

func TestHashPasswordRejectsEmptyPassword(t *testing.T) {
	if _, err := HashPassword(""); err == nil {
		t.Fatal("expected error for empty password")
	}
}

func TestHashPasswordUsesFreshSalt(t *testing.T) {
	first, err := HashPassword("shared-password")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	second, err := HashPassword("shared-password")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	if first == second {
		t.Fatal("expected distinct records for the same password")
	}

	firstRaw, err := base64.StdEncoding.DecodeString(first)
	if err != nil {
		t.Fatalf("decode first record: %v", err)
	}
	secondRaw, err := base64.StdEncoding.DecodeString(second)
	if err != nil {
		t.Fatalf("decode second record: %v", err)
	}
	if string(firstRaw[:saltLength]) == string(secondRaw[:saltLength]) {
		t.Fatal("expected distinct salts for the same password")
	}
}

func TestHashPasswordRecordShape(t *testing.T) {
	record, err := HashPassword("shape-check")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	raw, err := base64.StdEncoding.DecodeString(record)
	if err != nil {
		t.Fatalf("record is not valid base64: %v", err)
	}
	if len(raw) != recordRawLength {
		t.Fatalf("expected %d raw bytes, got %d", recordRawLength, len(raw))
	}
}

func TestVerifyPasswordRejectsMalformedRecords(t *testing.T) {
	if VerifyPassword("not base64!!", "anything") {
		t.Fatal("expected malformed base64 record to verify false")
	}
	short := base64.StdEncoding.EncodeToString([]byte("too short"))
	if VerifyPassword(short, "anything") {
		t.Fatal("expected truncated record to verify false")
	}
	if VerifyPassword("", "anything") {
		t.Fatal("expected empty record to verify false")
	}
}
