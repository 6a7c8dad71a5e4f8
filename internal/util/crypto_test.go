package util

import (
	"testing"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if hash == "s3cret-password" {
		t.Error("HashPassword() returned the plaintext password")
	}

	if !ComparePassword(hash, "s3cret-password") {
		t.Error("ComparePassword() rejected the correct password")
	}

	if ComparePassword(hash, "wrong-password") {
		t.Error("ComparePassword() accepted a wrong password")
	}
}

func TestGenerateResetCode(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		wantErr bool
	}{
		{"Six digit code", 6, false},
		{"Ten digit code", 10, false},
		{"Negative length", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateResetCode(tt.n)
			if (err != nil) != tt.wantErr {
				t.Errorf("GenerateResetCode() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if len(got) != tt.n {
				t.Errorf("GenerateResetCode() got = %v, want length %v", got, tt.n)
			}
			for _, c := range got {
				if c < '0' || c > '9' {
					t.Errorf("GenerateResetCode() got non-digit %q in %q", c, got)
				}
			}
		})
	}
}
