package types

import (
	"fmt"
	"net/netip"
	"strings"
	"unicode"

	"github.com/zoobzio/schematype"
)

// MaskKind names a data format with masking rules.
type MaskKind string

// Supported formats.
const (
	MaskSSN   MaskKind = "ssn"   // 123-45-6789 -> ***-**-6789
	MaskEmail MaskKind = "email" // alice@example.com -> a***@example.com
	MaskPhone MaskKind = "phone" // (555) 123-4567 -> (***) ***-4567
	MaskCard  MaskKind = "card"  // 4111111111111111 -> ************1111
	MaskIP    MaskKind = "ip"    // 192.168.1.100 -> 192.168.xxx.xxx
	MaskUUID  MaskKind = "uuid"  // 550e8400-e29b-... -> 550e8400-****-****-****-************
	MaskIBAN  MaskKind = "iban"  // GB82WEST12345698765432 -> GB82************5432
	MaskName  MaskKind = "name"  // John Smith -> J*** S****
)

// MaskedSpec selects the format.
type MaskedSpec struct {
	Kind MaskKind
}

// Masked redacts sensitive strings on wrap, keeping just enough to recognise
// them. Like Password it has no backward transform.
type Masked struct {
	schematype.Contract[string, string, MaskedSpec]
	schematype.Unimplemented[string, string, MaskedSpec]
}

var _ schematype.Schema[string, string, MaskedSpec] = (*Masked)(nil)

// NewMasked returns a Masked named "masked".
func NewMasked() *Masked {
	m := &Masked{}
	m.Contract = schematype.Mixin[string, string, MaskedSpec]("masked", m)
	return m
}

// Validate checks value has the shape its kind needs to be masked partially.
func (m *Masked) Validate(value string, spec MaskedSpec) error {
	var ok bool
	switch spec.Kind {
	case MaskSSN, MaskPhone, MaskCard:
		ok = len(digits(value)) >= 4
	case MaskEmail:
		ok = strings.LastIndex(value, "@") > 0
	case MaskIP:
		_, err := netip.ParseAddr(value)
		ok = err == nil
	case MaskUUID:
		ok = len(strings.Split(value, "-")) == 5
	case MaskIBAN:
		ok = len(value) > 8
	case MaskName:
		ok = strings.TrimSpace(value) != ""
	default:
		return fmt.Errorf("%w: unknown mask kind %q", ErrInvalidSpec, spec.Kind)
	}
	return m.Assert(ok, fmt.Sprintf("expected a value in %s format", spec.Kind), schematype.Properties{
		Actual:   value,
		Expected: string(spec.Kind),
		Operator: schematype.OpMatch,
	})
}

// Cast masks value. Input that does not fit its format is masked entirely.
func (m *Masked) Cast(value string, spec MaskedSpec) (string, error) {
	switch spec.Kind {
	case MaskSSN:
		return lastFour(value, func(last4 string, _ int) string { return "***-**-" + last4 }), nil
	case MaskPhone:
		return lastFour(value, func(last4 string, n int) string {
			switch {
			case strings.HasPrefix(value, "(") && n >= 10:
				return "(***) ***-" + last4
			case n >= 10:
				return "***-***-" + last4
			default:
				return "***-" + last4
			}
		}), nil
	case MaskCard:
		return lastFour(value, func(last4 string, n int) string {
			switch {
			case strings.Contains(value, " "):
				return grouped(n, " ") + " " + last4
			case strings.Contains(value, "-"):
				return grouped(n, "-") + "-" + last4
			default:
				return strings.Repeat("*", n-4) + last4
			}
		}), nil
	case MaskEmail:
		at := strings.LastIndex(value, "@")
		if at < 1 {
			return blank(value), nil
		}
		r := []rune(value[:at])
		return string(r[0]) + "***" + value[at:], nil
	case MaskIP:
		return maskIP(value), nil
	case MaskUUID:
		parts := strings.Split(value, "-")
		if len(parts) != 5 {
			return blank(value), nil
		}
		return parts[0] + "-****-****-****-************", nil
	case MaskIBAN:
		if len(value) <= 8 {
			return blank(value), nil
		}
		return value[:4] + strings.Repeat("*", len(value)-8) + value[len(value)-4:], nil
	case MaskName:
		words := strings.Fields(value)
		for i, w := range words {
			r := []rune(w)
			words[i] = string(r[0]) + strings.Repeat("*", len(r)-1)
		}
		return strings.Join(words, " "), nil
	default:
		return "", fmt.Errorf("%w: unknown mask kind %q", ErrInvalidSpec, spec.Kind)
	}
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func blank(s string) string {
	return strings.Repeat("*", len(s))
}

// lastFour keeps the trailing four digits of value and lets format lay out
// the rest given the total digit count.
func lastFour(value string, format func(last4 string, n int) string) string {
	d := digits(value)
	if len(d) < 4 {
		return blank(value)
	}
	return format(d[len(d)-4:], len(d))
}

// grouped renders the masked digits before the last four as sep-joined
// groups of four.
func grouped(n int, sep string) string {
	groups := make([]string, (n-4+3)/4)
	for i := range groups {
		groups[i] = "****"
	}
	return strings.Join(groups, sep)
}

// maskIP keeps the network half: two octets of IPv4, four groups of IPv6.
func maskIP(value string) string {
	addr, err := netip.ParseAddr(value)
	if err != nil {
		return blank(value)
	}
	if addr.Is4() {
		b := addr.As4()
		return fmt.Sprintf("%d.%d.xxx.xxx", b[0], b[1])
	}
	b := addr.As16()
	return fmt.Sprintf("%02x%02x:%02x%02x:%02x%02x:%02x%02x:xxxx:xxxx:xxxx:xxxx",
		b[0], b[1], b[2], b[3], b[4], b[5], b[6], b[7])
}
