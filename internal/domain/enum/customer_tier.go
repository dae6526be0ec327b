package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// CustomerTier selects which price column applies to a sale
type CustomerTier int

const (
	TierCustomer CustomerTier = 0
	TierEmployee CustomerTier = 1
)

var tierNames = [...]string{"customer", "employee"}

// ParseCustomerTier parses a wire string into a tier
func ParseCustomerTier(s string) (CustomerTier, error) {
	for i, name := range tierNames {
		if name == s {
			return CustomerTier(i), nil
		}
	}
	return 0, fmt.Errorf("unknown customer tier %q", s)
}

func (t CustomerTier) Valid() bool {
	return int(t) >= 0 && int(t) < len(tierNames)
}

func (t CustomerTier) String() string {
	if !t.Valid() {
		return "customer"
	}
	return tierNames[t]
}

func (t CustomerTier) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *CustomerTier) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = CustomerTier(i)
		return nil
	}
	parsed, err := ParseCustomerTier(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t CustomerTier) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *CustomerTier) Scan(value interface{}) error {
	if value == nil {
		*t = TierCustomer
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = CustomerTier(v)
	case int:
		*t = CustomerTier(v)
	}
	return nil
}
