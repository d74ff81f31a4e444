package model

import "strings"

// Address is a canonical, lower-cased C-Chain account identifier.
// All map keys and comparisons in this codebase use the normalized form.
type Address string

// NormalizeAddress canonicalizes a raw address string.
func NormalizeAddress(raw string) Address {
	return Address(strings.ToLower(strings.TrimSpace(raw)))
}

// IsZero reports whether the address is empty or the zero address.
func (a Address) IsZero() bool {
	return a == "" || a == "0x0000000000000000000000000000000000000000"
}

// Equal compares two addresses case-insensitively.
func (a Address) Equal(other Address) bool {
	return strings.EqualFold(string(a), string(other))
}

func (a Address) String() string {
	return string(a)
}

// Short returns a truncated form for logging.
func (a Address) Short() string {
	if len(a) <= 10 {
		return string(a)
	}
	return string(a[:10]) + "..."
}
