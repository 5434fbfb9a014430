package apiclient

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFlexInt_AbsorbsStringsAndNumbers(t *testing.T) {
	cases := []struct {
		raw  string
		want int64
	}{
		{`12`, 12},
		{`"12"`, 12},
		{`" 34 "`, 34},
		{`""`, 0},
		{`null`, 0},
	}
	for _, tc := range cases {
		var f flexInt
		if err := json.Unmarshal([]byte(tc.raw), &f); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.raw, err)
		}
		if int64(f) != tc.want {
			t.Fatalf("flexInt(%s) = %d, want %d", tc.raw, f, tc.want)
		}
	}

	var f flexInt
	if err := json.Unmarshal([]byte(`"not a number"`), &f); err == nil {
		t.Fatalf("expected error for non-numeric string")
	}
}

func TestParsePrice_FallsBackToZero(t *testing.T) {
	if !parsePrice("12.50").Equal(decimal.RequireFromString("12.50")) {
		t.Fatalf("expected parsed price")
	}
	if !parsePrice("free!").IsZero() {
		t.Fatalf("unparseable price must become zero")
	}
	if !parsePrice("").IsZero() {
		t.Fatalf("empty price must become zero")
	}
}

func TestRawCartItem_ClampsQuantity(t *testing.T) {
	raw := rawCartItem{CartID: 1, PID: 2, Qty: 0, Price: "3.10"}
	item := raw.toCartItem()
	if item.Quantity != 1 {
		t.Fatalf("zero quantity must clamp to one, got %d", item.Quantity)
	}
}

func TestRawUser_MapsLegacyFields(t *testing.T) {
	payload := []byte(`{"id":"7","name":"Asha","email":"a@example.com","role":"customer","token":"jwt"}`)
	var raw rawUser
	if err := json.Unmarshal(payload, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	user := raw.toUser()
	if user.ID != 7 || user.Name != "Asha" || user.Token != "jwt" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestRawOrderDetails_MapsNestedLines(t *testing.T) {
	payload := []byte(`{
		"o_id": 3,
		"o_order_id": "GR-20260830-AB12CD34",
		"o_total": "18.40",
		"o_status": "placed",
		"items": [
			{"p_id": "10", "p_name": "Bananas", "price": "2.40", "qty": "2"},
			{"p_id": 11, "p_name": "Milk", "price": "1.20", "qty": 0}
		]
	}`)
	var raw rawOrderDetails
	if err := json.Unmarshal(payload, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	details := raw.toOrderDetails()
	if details.OrderID != 3 || details.OrderNumber != "GR-20260830-AB12CD34" {
		t.Fatalf("unexpected header: %+v", details)
	}
	if len(details.Lines) != 2 {
		t.Fatalf("expected two lines, got %+v", details.Lines)
	}
	if details.Lines[0].ProductID != 10 || details.Lines[0].Quantity != 2 {
		t.Fatalf("unexpected first line: %+v", details.Lines[0])
	}
	if details.Lines[1].Quantity != 1 {
		t.Fatalf("zero quantity must clamp to one: %+v", details.Lines[1])
	}
}
