package phone

import "testing"

func TestNormalizeE164(t *testing.T) {
	tests := []struct {
		in, region, want string
	}{
		{"0917 123 4567", "PH", "+639171234567"},
		{"+63 917 123 4567", "", "+639171234567"},
		{"  ", "PH", ""},
		{"not a phone", "PH", "not a phone"},
		{"12", "PH", "12"},
	}
	for _, tt := range tests {
		if got := NormalizeE164(tt.in, tt.region); got != tt.want {
			t.Errorf("NormalizeE164(%q,%q) = %q, want %q", tt.in, tt.region, got, tt.want)
		}
	}
}
