package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PaymentMethod represents how a sale was paid
type PaymentMethod int

const (
	PaymentCash     PaymentMethod = 0
	PaymentCard     PaymentMethod = 1
	PaymentTransfer PaymentMethod = 2
)

var paymentNames = [...]string{"cash", "card", "transfer"}

// ParsePaymentMethod parses a wire string into a payment method
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	for i, name := range paymentNames {
		if name == s {
			return PaymentMethod(i), nil
		}
	}
	return 0, fmt.Errorf("unknown payment method %q", s)
}

func (m PaymentMethod) Valid() bool {
	return int(m) >= 0 && int(m) < len(paymentNames)
}

// IsCash reports whether the method requires a tendered amount
func (m PaymentMethod) IsCash() bool {
	return m == PaymentCash
}

func (m PaymentMethod) String() string {
	if !m.Valid() {
		return "cash"
	}
	return paymentNames[m]
}

func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = PaymentMethod(i)
		return nil
	}
	parsed, err := ParsePaymentMethod(str)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m PaymentMethod) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *PaymentMethod) Scan(value interface{}) error {
	if value == nil {
		*m = PaymentCash
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = PaymentMethod(v)
	case int:
		*m = PaymentMethod(v)
	}
	return nil
}
