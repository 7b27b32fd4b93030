package country

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/iw2rmb/telmask/mask"
)

var (
	ErrUnknownRegion = errors.New("country: region not known to libphonenumber")
	ErrStepOrder     = errors.New("country: steps must grow and end with the catch-all")
)

// File is the YAML document of country formats.
type File struct {
	Countries []Entry `yaml:"countries" validate:"dive"`
}

// Entry is one country format. Exactly one of Template and Steps is set.
type Entry struct {
	Country  string `yaml:"country" validate:"required,len=2,alpha"`
	Template string `yaml:"template" validate:"required_without=Steps,excluded_with=Steps"`
	Steps    []Step `yaml:"steps" validate:"omitempty,dive"`

	// TrunkPrefix overrides the national prefix from libphonenumber. An
	// explicit empty string disables it.
	TrunkPrefix *string `yaml:"trunk_prefix" validate:"omitempty,max=4"`
}

// Step selects Template while the number has at most MaxDigits digits.
// MaxDigits 0 matches any count and must come last.
type Step struct {
	MaxDigits int    `yaml:"max_digits" validate:"gte=0,lte=17"`
	Template  string `yaml:"template" validate:"required"`
}

// Descriptor builds the mask descriptor for e.
func (e Entry) Descriptor() (mask.Descriptor, error) {
	var t mask.Template
	if len(e.Steps) > 0 {
		if err := checkSteps(e.Steps); err != nil {
			return mask.Descriptor{}, fmt.Errorf("%s: %w", e.Country, err)
		}
		t = stepTemplate(e.Steps)
	} else {
		t = mask.Fixed(e.Template)
	}

	d := mask.NewDescriptor(e.Country, t)
	if e.TrunkPrefix != nil {
		d.TrunkPrefix = *e.TrunkPrefix
	}
	return d, nil
}

func checkSteps(steps []Step) error {
	prev := 0
	for i, s := range steps {
		last := i == len(steps)-1
		if s.MaxDigits == 0 && !last {
			return ErrStepOrder
		}
		if s.MaxDigits != 0 && s.MaxDigits <= prev {
			return ErrStepOrder
		}
		prev = s.MaxDigits
	}
	return nil
}

func stepTemplate(steps []Step) mask.Template {
	steps = slices.Clone(steps)
	return mask.Dynamic(func(n int) string {
		for _, s := range steps {
			if s.MaxDigits == 0 || n <= s.MaxDigits {
				return s.Template
			}
		}
		return steps[len(steps)-1].Template
	})
}

func normalizeCountry(country string) string {
	return strings.ToUpper(strings.TrimSpace(country))
}
