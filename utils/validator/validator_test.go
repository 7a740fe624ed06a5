package validatorx

import "testing"

func TestIsDZPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"0561234567", true},
		{"0661234567", true},
		{"0761234567", true},
		{"+213561234567", true},
		{"+213761234567", true},
		{"0461234567", false},  // landline prefix
		{"056123456", false},   // too short
		{"05612345678", false}, // too long
		{"+21356123456", false},
		{"213561234567", false}, // missing + prefix
		{"0561 234 567", false}, // caller must strip whitespace first
		{"", false},
	}
	for _, tt := range tests {
		if got := IsDZPhone(tt.phone); got != tt.want {
			t.Errorf("IsDZPhone(%q) = %v, want %v", tt.phone, got, tt.want)
		}
	}
}
