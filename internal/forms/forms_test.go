package forms

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mamadbah2/bizdash/internal/domain/models"
)

func float(v float64) *float64 { return &v }

func validStrain() StrainForm {
	return StrainForm{Name: "Blue Dream", Type: models.StrainHybrid}
}

func validSupplier() SupplierForm {
	return SupplierForm{
		Name:            "Hive & Frame",
		ContactPerson:   "Paula",
		Email:           "paula@example.com",
		Phone:           "555-0123-456",
		ProductCategory: "Beekeeping",
		Rating:          5,
	}
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	return verr.Fields
}

func TestStrainForm_PercentageBounds(t *testing.T) {
	accepted := []*float64{nil, float(0), float(22.5), float(100)}
	for _, v := range accepted {
		f := validStrain()
		f.THCPercentage = v
		f.CBDPercentage = v
		if err := Validate(f); err != nil {
			t.Errorf("thc=%v rejected: %v", v, err)
		}
	}

	rejected := []float64{100.1, -0.1}
	for _, v := range rejected {
		f := validStrain()
		f.THCPercentage = float(v)
		fields := fieldErrors(t, Validate(f))
		if fields["thcPercentage"] != "THC % must be between 0 and 100." {
			t.Errorf("thc=%v: unexpected messages %v", v, fields)
		}
	}
}

func TestSupplierForm_RatingBounds(t *testing.T) {
	for _, rating := range []int{1, 3, 5} {
		f := validSupplier()
		f.Rating = rating
		if err := Validate(f); err != nil {
			t.Errorf("rating=%d rejected: %v", rating, err)
		}
	}

	for _, rating := range []int{0, 6} {
		f := validSupplier()
		f.Rating = rating
		fields := fieldErrors(t, Validate(f))
		if _, ok := fields["rating"]; !ok {
			t.Errorf("rating=%d accepted", rating)
		}
	}
}

func TestTransactionForm(t *testing.T) {
	valid := TransactionForm{
		Date:        time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC),
		Description: "Honey jar sales",
		Amount:      250,
		Type:        models.TransactionIncome,
	}
	if err := Validate(valid); err != nil {
		t.Fatalf("valid form rejected: %v", err)
	}

	cases := []struct {
		name  string
		edit  func(*TransactionForm)
		field string
		msg   string
	}{
		{"zero amount", func(f *TransactionForm) { f.Amount = 0 }, "amount", "Amount must be a positive number."},
		{"negative amount", func(f *TransactionForm) { f.Amount = -5 }, "amount", "Amount must be a positive number."},
		{"missing description", func(f *TransactionForm) { f.Description = "" }, "description", "Description is required."},
		{"missing date", func(f *TransactionForm) { f.Date = time.Time{} }, "date", "Date is required."},
		{"unknown type", func(f *TransactionForm) { f.Type = "refund" }, "type", "Type is required."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := valid
			tc.edit(&f)
			fields := fieldErrors(t, Validate(f))
			if fields[tc.field] != tc.msg {
				t.Fatalf("field %s: got %q, want %q (all: %v)", tc.field, fields[tc.field], tc.msg, fields)
			}
		})
	}
}

func TestEnumMembership(t *testing.T) {
	task := TaskForm{
		Title:    "Count jars",
		Assignee: "Diana",
		DueDate:  time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC),
		Status:   models.TaskInProgress,
		Priority: models.PriorityHigh,
	}
	if err := Validate(task); err != nil {
		t.Fatalf("valid task rejected: %v", err)
	}

	task.Status = "Someday"
	task.Priority = "Urgent"
	fields := fieldErrors(t, Validate(task))
	if _, ok := fields["status"]; !ok {
		t.Errorf("status not rejected: %v", fields)
	}
	if _, ok := fields["priority"]; !ok {
		t.Errorf("priority not rejected: %v", fields)
	}

	doc := ComplianceForm{
		Title:      "Organic Certificate",
		Type:       models.ComplianceCertificate,
		Status:     models.ComplianceExpiringSoon,
		ExpiryDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Business:   "bakery",
	}
	fields = fieldErrors(t, Validate(doc))
	if len(fields) != 1 || fields["business"] == "" {
		t.Fatalf("expected only business to fail, got %v", fields)
	}
}

func TestEquipmentForm_StatusWithSpaces(t *testing.T) {
	f := EquipmentForm{Name: "Humidifier", Type: "Cultivation", Status: models.EquipmentRequiresRepair, Location: "Tent 2"}
	if err := Validate(f); err != nil {
		t.Fatalf("valid equipment rejected: %v", err)
	}
}

func TestEventForm_TimeAndCost(t *testing.T) {
	f := EventForm{Title: "Market", Date: time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC), Time: "09:00", Type: models.EventMarket, Cost: float(60)}
	if err := Validate(f); err != nil {
		t.Fatalf("valid event rejected: %v", err)
	}

	f.Time = "9am"
	f.Cost = float(-1)
	fields := fieldErrors(t, Validate(f))
	if fields["time"] == "" || fields["cost"] == "" {
		t.Fatalf("expected time and cost errors, got %v", fields)
	}
}

func TestCustomerForm_PatchKeepsCountersAndOptionalStatus(t *testing.T) {
	f := CustomerForm{Name: "Ada Lovelace", Email: "ada@example.com"}
	if err := Validate(f); err != nil {
		t.Fatalf("valid customer rejected: %v", err)
	}

	patch := f.ToPatch()
	if patch.TotalOrders != nil || patch.TotalSpent != nil || patch.Status != nil {
		t.Fatalf("patch touches fields the form does not collect: %+v", patch)
	}

	f.Status = models.CustomerLead
	if p := f.ToPatch(); p.Status == nil || *p.Status != models.CustomerLead {
		t.Fatalf("status not carried into patch")
	}

	f.Email = "not-an-email"
	fields := fieldErrors(t, Validate(f))
	if fields["email"] != "Invalid email address" {
		t.Fatalf("unexpected email message %v", fields)
	}
}

func TestValidationError_MessageIsStable(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"b": "second", "a": "first"}}
	if got := err.Error(); !strings.HasPrefix(got, "validation failed: a: first; b: second") {
		t.Fatalf("unexpected error text %q", got)
	}
}
