package target

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gabapcia/oraclewatch/internal/pkg/validator"
)

// ErrTargetNotFound is returned when a target is not registered.
var ErrTargetNotFound = errors.New("target not found")

// Kind names the kind of real-world signal a target is observed for.
type Kind string

const (
	KindWildfire Kind = "wildfire"
	KindFlight   Kind = "flight"
)

// Kinds lists every supported kind in scheduling order.
var Kinds = []Kind{KindWildfire, KindFlight}

// ParseKind converts s into a Kind, rejecting unknown values.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case KindWildfire, KindFlight:
		return k, nil
	default:
		return "", fmt.Errorf("%w: unknown target kind %q", validator.ErrValidationFailed, s)
	}
}

// MonitoredTarget is one thing the oracle watches: a street address for
// wildfires or a flight identifier for arrival delays.
type MonitoredTarget struct {
	ID         string `yaml:"id,omitempty" json:"id"`
	Kind       Kind   `yaml:"kind" json:"kind" validate:"required,oneof=wildfire flight"`
	Descriptor string `yaml:"descriptor" json:"descriptor" validate:"required"`

	// LastScanAt is nil until the target has been scanned once.
	LastScanAt *time.Time `yaml:"-" json:"last_scan_at,omitempty"`
}

// MakeID returns the deterministic identifier "<kind>:<descriptor>".
func MakeID(kind Kind, descriptor string) string {
	return string(kind) + ":" + descriptor
}

// New builds and validates a MonitoredTarget. Surrounding whitespace in the
// descriptor is dropped.
func New(kind Kind, descriptor string) (MonitoredTarget, error) {
	descriptor = strings.TrimSpace(descriptor)

	t := MonitoredTarget{
		ID:         MakeID(kind, descriptor),
		Kind:       kind,
		Descriptor: descriptor,
	}

	return t, validator.Validate(t)
}

// Normalize fills a missing ID and validates t. It is used for targets
// loaded from storage that may omit the ID.
func Normalize(t MonitoredTarget) (MonitoredTarget, error) {
	t.Descriptor = strings.TrimSpace(t.Descriptor)
	if t.ID == "" {
		t.ID = MakeID(t.Kind, t.Descriptor)
	}

	return t, validator.Validate(t)
}
