package validation

import (
	"strings"
	"testing"
)

func TestValidatePort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"default port", "8080", false},
		{"lowest port", "1", false},
		{"highest port", "65535", false},
		{"zero", "0", true},
		{"too large", "65536", true},
		{"negative", "-1", true},
		{"not a number", "http", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidatePort(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePort(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestTCPPortTag(t *testing.T) {
	t.Parallel()

	type target struct {
		Port string `validate:"tcp_port"`
	}

	if err := Validate.Struct(target{Port: "9090"}); err != nil {
		t.Errorf("Expected valid port to pass, got %v", err)
	}

	err := Validate.Struct(target{Port: "nope"})
	if err == nil {
		t.Fatal("Expected invalid port to fail validation")
	}

	formatted := FormatErrors(err)
	if formatted == nil || !strings.Contains(formatted.Error(), "Port failed tcp_port") {
		t.Errorf("Expected formatted error to name the field and tag, got %v", formatted)
	}
}

func TestFormatErrors_Nil(t *testing.T) {
	t.Parallel()

	if err := FormatErrors(nil); err != nil {
		t.Errorf("FormatErrors(nil) = %v, want nil", err)
	}
}
