package utils

import (
	"strings"
	"testing"
)

func TestNormalizePhoneNumber(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"9876543210", "9876543210"},
		{"+91 98765 43210", "9876543210"},
		{"919876543210", "9876543210"},
		{"09876543210", "9876543210"},
		{"98765-43210", "9876543210"},
		{"(987) 654-3210", "9876543210"},
		// too short to be a mobile number, digits pass through untouched
		{"12345", "12345"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizePhoneNumber(tc.in); got != tc.want {
			t.Errorf("NormalizePhoneNumber(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsValidMobile(t *testing.T) {
	valid := []string{"9876543210", "6000000001", "+919876543210", "09876543210", "7012 345 678"}
	for _, p := range valid {
		if !IsValidMobile(p) {
			t.Errorf("IsValidMobile(%q) = false, want true", p)
		}
	}

	invalid := []string{
		"1234567890", // landline-style first digit
		"5876543210", // first digit below 6
		"987654321",  // 9 digits
		"98765432101",
		"",
		"not-a-number",
	}
	for _, p := range invalid {
		if IsValidMobile(p) {
			t.Errorf("IsValidMobile(%q) = true, want false", p)
		}
	}
}

func TestDisplayPhoneNumber(t *testing.T) {
	if got := DisplayPhoneNumber("+919876543210"); got != "+91 98765 43210" {
		t.Errorf("got %q", got)
	}
	// unusable input is returned as-is
	if got := DisplayPhoneNumber("12345"); got != "12345" {
		t.Errorf("got %q", got)
	}
}

func TestBuildWhatsAppLink(t *testing.T) {
	link := BuildWhatsAppLink("+91 98765 43210", "Hi! Booking PG-7K2M9Q4D confirmed, advance ₹1700 received.")
	if !strings.HasPrefix(link, "https://wa.me/919876543210?text=") {
		t.Fatalf("unexpected link prefix: %q", link)
	}
	if strings.ContainsAny(link[len("https://wa.me/919876543210?text="):], " ₹") {
		t.Errorf("message not url-encoded: %q", link)
	}

	if link := BuildWhatsAppLink("12345", "hello"); link != "" {
		t.Errorf("bad phone must yield empty link, got %q", link)
	}
}

func TestGenerateReferenceCode(t *testing.T) {
	code, err := GenerateReferenceCode(8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(code, "PG-") || len(code) != len("PG-")+8 {
		t.Fatalf("unexpected code shape: %q", code)
	}
	for _, c := range code[3:] {
		if !strings.ContainsRune(referenceCharset, c) {
			t.Errorf("character %q outside reference charset", c)
		}
	}

	if _, err := GenerateReferenceCode(0); err == nil {
		t.Error("zero length must be rejected")
	}
}
