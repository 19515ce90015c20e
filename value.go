package karou

import (
	"strconv"
	"strings"
)

// Value is a runtime value: Number, Text or Boolean. There is no nil value;
// a missing binding is a lookup error.
type Value interface {
	isValue()
	String() string
}

type Number float64

func (Number) isValue()         {}
func (n Number) String() string { return formatNumber(float64(n)) }

type Text string

func (Text) isValue()         {}
func (t Text) String() string { return string(t) }

type Boolean bool

func (Boolean) isValue() {}
func (b Boolean) String() string {
	if b {
		return "true"
	}
	return "false"
}

// formatNumber prints six decimals and trims trailing zeros and a dangling
// point, so 14 prints as "14" and 1/3 as "0.333333".
func formatNumber(f float64) string {
	s := strconv.FormatFloat(f, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

// ToText, ToNumber and ToBoolean never fail; every value converts to every
// kind.

func ToText(v Value) string {
	switch v := v.(type) {
	case nil:
		return ""
	default:
		return v.String()
	}
}

func ToNumber(v Value) float64 {
	switch v := v.(type) {
	case Number:
		return float64(v)
	case Text:
		f, err := strconv.ParseFloat(strings.TrimSpace(string(v)), 64)
		if err != nil {
			return 0
		}
		return f
	case Boolean:
		if v {
			return 1
		}
		return 0
	default:
		return 0
	}
}

func ToBoolean(v Value) bool {
	switch v := v.(type) {
	case Number:
		return v != 0
	case Text:
		return v != ""
	case Boolean:
		return bool(v)
	default:
		return false
	}
}
