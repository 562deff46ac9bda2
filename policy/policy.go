// Package policy implements the strict/lenient severity switch shared by the
// configuration validator, the placement resolver and the overlay filter.
//
// Under the strict policy every violation is returned to the caller as a
// fatal error. Under the lenient policy the violation is logged as a warning
// and the caller continues with the documented default.
package policy

import (
	"github.com/sirupsen/logrus"
)

// Policy selects how violations are handled.
type Policy int

const (
	// Lenient logs violations and substitutes defaults.
	Lenient Policy = iota
	// Strict turns every violation into a fatal error.
	Strict
)

// FromStrict maps the strict-mode flag onto a Policy.
func FromStrict(strict bool) Policy {
	if strict {
		return Strict
	}
	return Lenient
}

// String returns the policy name.
func (p Policy) String() string {
	if p == Strict {
		return "strict"
	}
	return "lenient"
}

// IsStrict reports whether violations abort processing.
func (p Policy) IsStrict() bool {
	return p == Strict
}

// Enforce applies the policy to a violation.
//
// Strict returns the violation as the error. Lenient logs it as a warning on
// the given entry and returns nil, signalling the caller to fall back.
func (p Policy) Enforce(log *logrus.Entry, v *Violation) error {
	if v == nil {
		return nil
	}
	if p == Strict {
		return v
	}

	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	log.WithFields(logrus.Fields{
		"function": "Policy.Enforce",
		"kind":     v.Kind.Error(),
		"option":   v.Option,
		"value":    v.Value,
	}).Warn(v.Reason)

	return nil
}
