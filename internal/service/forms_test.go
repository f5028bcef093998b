package service

import (
	"testing"
)

func TestValidateSignupForm(t *testing.T) {
	valid := SignupForm{Name: "Alice", Email: "alice@example.com", Password: "secret-pass"}
	if err := ValidateSignupForm(valid, 8); err != nil {
		t.Fatalf("valid form should pass, got %v", err)
	}

	bad := SignupForm{Name: "A", Email: "not-an-email", Password: "short"}
	err := ValidateSignupForm(bad, 8)
	if err == nil {
		t.Fatalf("invalid form should fail")
	}
	fieldErrs, ok := AsFieldErrors(err)
	if !ok {
		t.Fatalf("error should be field errors, got %T", err)
	}
	fields := fieldErrs.Fields()
	for _, field := range []string{"name", "email", "password"} {
		if _, ok := fields[field]; !ok {
			t.Fatalf("field %s should be reported, got %v", field, fields)
		}
	}

	// 密码下限不允许低于 8
	weak := SignupForm{Name: "Alice", Email: "alice@example.com", Password: "1234567"}
	if err := ValidateSignupForm(weak, 1); err == nil {
		t.Fatalf("7 char password should fail even with lower configured minimum")
	}
}

func TestValidateSigninForm(t *testing.T) {
	if err := ValidateSigninForm(SigninForm{Email: "alice@example.com", Password: "x"}); err != nil {
		t.Fatalf("valid form should pass, got %v", err)
	}
	err := ValidateSigninForm(SigninForm{Email: "", Password: " "})
	fieldErrs, ok := AsFieldErrors(err)
	if !ok {
		t.Fatalf("error should be field errors, got %v", err)
	}
	fields := fieldErrs.Fields()
	if _, ok := fields["email"]; !ok {
		t.Fatalf("email should be reported, got %v", fields)
	}
	if _, ok := fields["password"]; !ok {
		t.Fatalf("password should be reported, got %v", fields)
	}
}

func TestValidateCheckoutForm(t *testing.T) {
	valid := CheckoutForm{Address: "1 Main Street", Email: "buyer@example.com", Phone: "0123456789"}
	if err := ValidateCheckoutForm(valid); err != nil {
		t.Fatalf("valid form should pass, got %v", err)
	}

	longPhone := valid
	longPhone.Phone = "0123456789012345"
	if err := ValidateCheckoutForm(longPhone); err == nil {
		t.Fatalf("16 digit phone should fail")
	}
	shortPhone := valid
	shortPhone.Phone = "012345678"
	if err := ValidateCheckoutForm(shortPhone); err == nil {
		t.Fatalf("9 digit phone should fail")
	}

	empty := CheckoutForm{}
	err := ValidateCheckoutForm(empty)
	fieldErrs, ok := AsFieldErrors(err)
	if !ok {
		t.Fatalf("error should be field errors, got %v", err)
	}
	fields := fieldErrs.Fields()
	for _, field := range []string{"address", "email", "phone"} {
		if _, ok := fields[field]; !ok {
			t.Fatalf("field %s should be reported, got %v", field, fields)
		}
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Alice@Example.COM  "); got != "alice@example.com" {
		t.Fatalf("normalize want alice@example.com got %s", got)
	}
}
