package validate_test

import (
	"testing"

	"github.com/shashiranjanraj/stockwise/pkg/validate"
)

type itemInput struct {
	Name      string  `json:"name"       validate:"required,min=2,max=255"`
	Category  string  `json:"category"   validate:"required,min=2,max=100"`
	Quantity  int     `json:"quantity"   validate:"gte=0"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
	Notes     string  `json:"notes"      validate:"nullable,max=500"`
}

type thresholdInput struct {
	Category string `json:"category"        validate:"required,min=2,max=100"`
	MinStock int    `json:"min_stock_level" validate:"gte=0"`
	MaxStock int    `json:"max_stock_level" validate:"required,gt_field=min_stock_level"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(itemInput{
		Name:      "USB-C Cable",
		Category:  "Electronics",
		Quantity:  40,
		UnitPrice: 9.99,
		Notes:     "", // nullable — allowed to be empty
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(itemInput{})
	if !validate.HasErrors(errs) {
		t.Error("expected required errors")
	}
	if _, ok := errs["name"]; !ok {
		t.Error("expected name to be required")
	}
	if _, ok := errs["category"]; !ok {
		t.Error("expected category to be required")
	}
}

func TestGtFieldRule(t *testing.T) {
	if errs := validate.Struct(thresholdInput{Category: "Tools", MinStock: 15, MaxStock: 10}); !validate.HasErrors(errs) {
		t.Error("expected max <= min to fail")
	}
	if errs := validate.Struct(thresholdInput{Category: "Tools", MinStock: 15, MaxStock: 15}); !validate.HasErrors(errs) {
		t.Error("expected max == min to fail")
	}
	if errs := validate.Struct(thresholdInput{Category: "Tools", MinStock: 15, MaxStock: 150}); validate.HasErrors(errs) {
		t.Errorf("expected max > min to pass: %v", errs)
	}
}

func TestNumericBounds(t *testing.T) {
	type in struct {
		Quantity int `json:"quantity" validate:"required,gte=1,lte=100000"`
	}
	if errs := validate.Struct(in{Quantity: 0}); !validate.HasErrors(errs) {
		t.Error("expected quantity 0 to fail required")
	}
	if errs := validate.Struct(in{Quantity: 40}); validate.HasErrors(errs) {
		t.Errorf("expected quantity 40 to pass, got: %v", errs)
	}
}

func TestInRule(t *testing.T) {
	type in struct {
		Role string `json:"role" validate:"required,in=Admin,Manager,Stock Keeper,Viewer"`
	}
	if errs := validate.Struct(in{Role: "Superadmin"}); !validate.HasErrors(errs) {
		t.Error("expected invalid role to fail")
	}
	if errs := validate.Struct(in{Role: "Stock Keeper"}); validate.HasErrors(errs) {
		t.Errorf("expected Stock Keeper to pass: %v", errs)
	}
}

func TestConfirmedRule(t *testing.T) {
	type in struct {
		Password             string `json:"password"              validate:"required,min=8"`
		PasswordConfirmation string `json:"password_confirmation" validate:"confirmed"`
	}
	if errs := validate.Struct(in{Password: "secret123", PasswordConfirmation: "wrong"}); !validate.HasErrors(errs) {
		t.Error("expected confirmation mismatch to fail")
	}
	if errs := validate.Struct(in{Password: "secret123", PasswordConfirmation: "secret123"}); validate.HasErrors(errs) {
		t.Errorf("expected matching confirmation to pass: %v", errs)
	}
}

func TestNullableSkipsRules(t *testing.T) {
	type in struct {
		Website string `json:"website" validate:"nullable,url"`
	}
	// Empty string — nullable, should pass even though it's not a URL
	if errs := validate.Struct(in{Website: ""}); validate.HasErrors(errs) {
		t.Errorf("expected empty nullable to pass: %v", errs)
	}
	// Non-empty but invalid URL — should fail
	if errs := validate.Struct(in{Website: "not-a-url"}); !validate.HasErrors(errs) {
		t.Error("expected invalid URL to fail")
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	if errs := validate.Struct(in{Email: "not-an-email"}); !validate.HasErrors(errs) {
		t.Error("expected email validation error")
	}
	if errs := validate.Struct(in{Email: "keeper@example.com"}); validate.HasErrors(errs) {
		t.Errorf("expected valid email to pass, got: %v", errs)
	}
}

func TestBetweenRule(t *testing.T) {
	type in struct {
		Discount float64 `json:"discount" validate:"required,between=0,100"`
	}
	if errs := validate.Struct(in{Discount: 150}); !validate.HasErrors(errs) {
		t.Error("expected discount > 100 to fail")
	}
	if errs := validate.Struct(in{Discount: 75}); validate.HasErrors(errs) {
		t.Errorf("expected discount 75 to pass: %v", errs)
	}
}
