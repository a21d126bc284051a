package validator_test

import (
	"strings"
	"testing"

	"potteryloop/shared/validator"
)

// Test structs for validation
type inquiryTestStruct struct {
	Name  string `validate:"required" json:"name"`
	Email string `validate:"required,email" json:"email"`
	Phone string `validate:"omitempty,phone" json:"phone"`
	Size  int    `validate:"gte=1,lte=40" json:"size"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *inquiryTestStruct
		expectError bool
	}{
		{
			name: "valid struct",
			data: &inquiryTestStruct{
				Name:  "Jane Doe",
				Email: "jane@example.com",
				Phone: "(312) 555-0142",
				Size:  8,
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &inquiryTestStruct{
				Email: "jane@example.com",
				Size:  8,
			},
			expectError: true,
		},
		{
			name: "invalid email",
			data: &inquiryTestStruct{
				Name:  "Jane Doe",
				Email: "invalid-email",
				Size:  8,
			},
			expectError: true,
		},
		{
			name: "phone with too few digits",
			data: &inquiryTestStruct{
				Name:  "Jane Doe",
				Email: "jane@example.com",
				Phone: "555-01",
				Size:  8,
			},
			expectError: true,
		},
		{
			name: "size out of range",
			data: &inquiryTestStruct{
				Name:  "Jane Doe",
				Email: "jane@example.com",
				Size:  41,
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidate_DecodeAndValidate(t *testing.T) {
	body := strings.NewReader(`{"name":"Jane","email":"jane@example.com","size":5}`)

	data := inquiryTestStruct{}
	if err := validator.Validate(body, &data); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if data.Name != "Jane" || data.Size != 5 {
		t.Errorf("decoded struct incomplete: %+v", data)
	}
}

func TestValidate_MalformedJSON(t *testing.T) {
	body := strings.NewReader(`{"name":`)

	data := inquiryTestStruct{}
	if err := validator.Validate(body, &data); err == nil {
		t.Error("expected decode error, got nil")
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("jane@example.com", "email"); err != nil {
		t.Errorf("expected valid email, got %v", err)
	}

	if err := validator.ValidateVar("nope", "email"); err == nil {
		t.Error("expected email validation error, got nil")
	}
}
