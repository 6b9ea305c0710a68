package pricing

import (
	"encoding/json"
	"fmt"
)

// focLiteral is the wire representation of a free-of-charge surcharge.
const focLiteral = "FOC"

// Charge is a child-surcharge value: either a monetary amount or the
// free-of-charge marker. It serialises as a JSON number or the string "FOC",
// keeping the external contract while staying type-safe internally.
type Charge struct {
	free   bool
	amount float64
}

// ChargeAmount wraps a monetary amount.
func ChargeAmount(v float64) Charge {
	return Charge{amount: v}
}

// FreeOfCharge is the marker used when the underlying raw total is exactly zero.
func FreeOfCharge() Charge {
	return Charge{free: true}
}

// IsFree reports whether the charge is the free-of-charge marker.
func (c Charge) IsFree() bool { return c.free }

// Amount returns the monetary amount; zero when free of charge.
func (c Charge) Amount() float64 {
	if c.free {
		return 0
	}
	return c.amount
}

// MarshalJSON renders "FOC" or a plain number.
func (c Charge) MarshalJSON() ([]byte, error) {
	if c.free {
		return json.Marshal(focLiteral)
	}
	return json.Marshal(c.amount)
}

// UnmarshalJSON accepts a number or the string "FOC".
func (c *Charge) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != focLiteral {
			return fmt.Errorf("invalid charge literal %q", s)
		}
		*c = FreeOfCharge()
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = ChargeAmount(v)
	return nil
}
