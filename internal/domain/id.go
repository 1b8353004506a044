package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf16"
)

// ID identifies a warehouse, agent or package.
//
// Datasets may use either JSON strings or JSON numbers as identifiers. The literal
// form is kept so reports echo ids exactly as they were supplied, and a numeric id
// never matches a string id with the same text. Lookups go through Key, under which
// numeric ids with the same value (1 and 1.0) are the same id.
type ID struct {
	value   string
	numeric bool
	key     string
}

// IDKey is the comparable lookup form of an ID.
type IDKey struct {
	numeric bool
	value   string
}

// StringID builds an ID rendered as a JSON string.
func StringID(s string) ID { return ID{value: s, key: s} }

// NumericID builds an ID from a JSON number literal (e.g. "7" or "7.5").
func NumericID(literal string) ID {
	return ID{value: literal, numeric: true, key: numericKey(literal)}
}

// ParseID rebuilds an ID from its stored text and kind.
func ParseID(value string, numeric bool) ID {
	if numeric {
		return NumericID(value)
	}
	return StringID(value)
}

// numericKey canonicalizes a number literal to its exact value. Integer literals
// keep arbitrary precision; literals with a fraction or exponent are read as
// float64 first, so 0.1 keys as the nearest double, not as 1/10.
func numericKey(literal string) string {
	if !strings.ContainsAny(literal, ".eE") {
		if n, ok := new(big.Int).SetString(literal, 10); ok {
			return n.String()
		}
		return literal
	}

	f, err := strconv.ParseFloat(literal, 64)
	if err != nil && !math.IsInf(f, 0) {
		return literal
	}
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	r := new(big.Rat).SetFloat64(f)
	if r.IsInt() {
		return r.Num().String()
	}
	return r.RatString()
}

// Key returns the lookup form of the id.
func (id ID) Key() IDKey { return IDKey{numeric: id.numeric, value: id.key} }

// Same reports whether two ids refer to the same entity.
func (id ID) Same(other ID) bool { return id.Key() == other.Key() }

func (id ID) String() string  { return id.value }
func (id ID) IsNumeric() bool { return id.numeric }
func (id ID) IsZero() bool    { return id == ID{} }

func (id ID) MarshalJSON() ([]byte, error) {
	if id.numeric {
		return []byte(id.value), nil
	}
	return quoteASCII(id.value), nil
}

// quoteASCII quotes s as a JSON string using only printable ASCII, escaping
// everything else as \uXXXX (surrogate pairs above the BMP).
func quoteASCII(s string) []byte {
	const hex = "0123456789abcdef"
	b := make([]byte, 0, len(s)+2)
	b = append(b, '"')
	u4 := func(r rune) {
		b = append(b, '\\', 'u', hex[r>>12&0xf], hex[r>>8&0xf], hex[r>>4&0xf], hex[r&0xf])
	}
	for _, r := range s {
		switch r {
		case '"':
			b = append(b, '\\', '"')
		case '\\':
			b = append(b, '\\', '\\')
		case '\n':
			b = append(b, '\\', 'n')
		case '\r':
			b = append(b, '\\', 'r')
		case '\t':
			b = append(b, '\\', 't')
		case '\b':
			b = append(b, '\\', 'b')
		case '\f':
			b = append(b, '\\', 'f')
		default:
			switch {
			case r >= 0x20 && r < 0x7f:
				b = append(b, byte(r))
			case r > 0xffff:
				r1, r2 := utf16.EncodeRune(r)
				u4(r1)
				u4(r2)
			default:
				u4(r)
			}
		}
	}
	return append(b, '"')
}

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return fmt.Errorf("id: must be a string or a number")
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("id: %w", err)
		}
		*id = StringID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id: must be a string or a number, got %s", b)
	}
	*id = NumericID(n.String())
	return nil
}
