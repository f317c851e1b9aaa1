package errors

import "testing"

func TestIsValidUUID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"valid lowercase", "a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d", true},
		{"valid uppercase", "A1B2C3D4-E5F6-4A7B-8C9D-0E1F2A3B4C5D", true},
		{"empty", "", false},
		{"missing hyphens", "a1b2c3d4e5f64a7b8c9d0e1f2a3b4c5d", false},
		{"too short", "a1b2c3d4-e5f6-4a7b-8c9d", false},
		{"non-hex characters", "g1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d", false},
		{"sql injection attempt", "1; DROP TABLE conversations--", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidUUID(tt.id); got != tt.want {
				t.Errorf("IsValidUUID(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}
