package pricing

import (
	"encoding/json"
	"testing"
)

func TestChargeMarshalsNumberOrFOC(t *testing.T) {
	data, err := json.Marshal(map[string]Charge{
		"amount": ChargeAmount(42),
		"free":   FreeOfCharge(),
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got := string(data)
	want := `{"amount":42,"free":"FOC"}`
	if got != want {
		t.Fatalf("want %s, got %s", want, got)
	}
}

func TestChargeUnmarshalRoundTrip(t *testing.T) {
	var c Charge
	if err := json.Unmarshal([]byte(`"FOC"`), &c); err != nil {
		t.Fatalf("unmarshal FOC: %v", err)
	}
	if !c.IsFree() {
		t.Fatal("expected free of charge")
	}

	if err := json.Unmarshal([]byte(`17.5`), &c); err != nil {
		t.Fatalf("unmarshal number: %v", err)
	}
	if c.IsFree() || c.Amount() != 17.5 {
		t.Fatalf("expected amount 17.5, got %+v", c)
	}

	if err := json.Unmarshal([]byte(`"gratis"`), &c); err == nil {
		t.Fatal("unknown literal must be rejected")
	}
}
