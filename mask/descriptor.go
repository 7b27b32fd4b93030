package mask

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

var (
	ErrMissingCountry  = errors.New("mask: descriptor has no country")
	ErrMissingTemplate = errors.New("mask: descriptor has no template")
	ErrNoPlaceholders  = errors.New("mask: template has no digit placeholders")
	ErrLiteralDigit    = errors.New("mask: template literal is a digit")
	// ErrTemplateTooShort reports a dynamic template that cannot hold the
	// digit count it was selected for.
	ErrTemplateTooShort = errors.New("mask: template too short for digit count")
)

// NewDescriptor returns a descriptor for country, filling TrunkPrefix and
// CallingCode from libphonenumber metadata.
func NewDescriptor(country string, t Template) Descriptor {
	region := strings.ToUpper(strings.TrimSpace(country))
	return Descriptor{
		Country:     region,
		Template:    t,
		TrunkPrefix: phonenumbers.GetNddPrefixForRegion(region, true),
		CallingCode: phonenumbers.GetCountryCodeForRegion(region),
	}
}

// Validate reports configuration errors in d. Descriptors are meant to be
// validated once when registered; Format, Parse and Edit never fail.
func Validate(d Descriptor) error {
	if strings.TrimSpace(d.Country) == "" {
		return ErrMissingCountry
	}
	if d.Template.IsZero() {
		return fmt.Errorf("%s: %w", d.Country, ErrMissingTemplate)
	}

	capacity := Capacity(d)
	if capacity == 0 {
		return fmt.Errorf("%s: %w", d.Country, ErrNoPlaceholders)
	}

	probe := 0
	if d.Template.IsDynamic() {
		probe = MaxDigits
	}
	for n := 0; n <= probe; n++ {
		l := Resolve(d, n)
		for _, s := range l {
			if s.Kind == SlotLiteral && isDigit(s.Text) {
				return fmt.Errorf("%s: %q: %w", d.Country, l.String(), ErrLiteralDigit)
			}
		}
		if d.Template.IsDynamic() && n <= capacity && l.Capacity() < n {
			return fmt.Errorf("%s: %d digits in %q: %w", d.Country, n, l.String(), ErrTemplateTooShort)
		}
	}
	return nil
}

// E164 returns digits in international plaintext form: "+", the calling
// code, then the national digits. Empty digits give an empty string.
func E164(digits string, d Descriptor) string {
	if digits == "" {
		return ""
	}
	if d.CallingCode <= 0 {
		return "+" + digits
	}
	return "+" + strconv.Itoa(d.CallingCode) + digits
}

func (d Descriptor) trunkDigits() string {
	return digitsOnly(d.TrunkPrefix)
}
