// Package contractcall converts domain-level oracle reports into the Soroban
// contract call arguments expected by the reporting contract, and decodes
// contract return values back into native Go values.
//
// The reporting contract exposes a single entry point:
//
//	bump(event_occurred: bool, event_time: Option<u64>)
//
// An absent event time is encoded as the void value, never as a numeric zero.
package contractcall

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/stellar/go/xdr"
)

// DefaultMethod is the contract entry point invoked for every report.
const DefaultMethod = "bump"

var (
	// ErrEncoding is returned when Params cannot be represented on the wire.
	// It signals a caller bug and must be caught before submission.
	ErrEncoding = errors.New("contract call encoding error")

	// ErrUnexpectedArgs is returned by DecodeParams when the argument list does
	// not have the shape produced by Encode.
	ErrUnexpectedArgs = errors.New("unexpected contract call arguments")
)

// Params is the typed, domain-level call. EventTime is a unix timestamp in
// seconds; nil means the time is unknown. Times above math.MaxInt64 are not
// representable and are rejected by DecodeParams.
type Params struct {
	EventOccurred bool
	EventTime     *int64
}

// NewParams builds Params from an occurrence flag and an optional time.
// A zero time yields an absent EventTime.
func NewParams(occurred bool, at time.Time) Params {
	p := Params{EventOccurred: occurred}
	if !at.IsZero() {
		ts := at.Unix()
		p.EventTime = &ts
	}

	return p
}

// Encode converts p into the ordered ScVal argument list of the contract entry point.
//
// It fails with ErrEncoding if EventTime is present but negative.
func Encode(p Params) ([]xdr.ScVal, error) {
	occurred := p.EventOccurred
	args := []xdr.ScVal{
		{Type: xdr.ScValTypeScvBool, B: &occurred},
	}

	if p.EventTime == nil {
		return append(args, xdr.ScVal{Type: xdr.ScValTypeScvVoid}), nil
	}

	if *p.EventTime < 0 {
		return nil, fmt.Errorf("%w: event time %d is negative", ErrEncoding, *p.EventTime)
	}

	ts := xdr.Uint64(*p.EventTime)
	return append(args, xdr.ScVal{Type: xdr.ScValTypeScvU64, U64: &ts}), nil
}

// DecodeParams reverses Encode. It is used by ledger mocks and tooling that
// inspect submitted envelopes.
func DecodeParams(args []xdr.ScVal) (Params, error) {
	if len(args) != 2 {
		return Params{}, fmt.Errorf("%w: expected 2 arguments, got %d", ErrUnexpectedArgs, len(args))
	}

	occurred, ok := args[0].GetB()
	if !ok {
		return Params{}, fmt.Errorf("%w: first argument is %s, want bool", ErrUnexpectedArgs, args[0].Type)
	}

	p := Params{EventOccurred: bool(occurred)}

	switch args[1].Type {
	case xdr.ScValTypeScvVoid:
	case xdr.ScValTypeScvU64:
		raw := uint64(args[1].MustU64())
		if raw > math.MaxInt64 {
			return Params{}, fmt.Errorf("%w: event time %d exceeds the supported range", ErrUnexpectedArgs, raw)
		}

		ts := int64(raw)
		p.EventTime = &ts
	default:
		return Params{}, fmt.Errorf("%w: second argument is %s, want u64 or void", ErrUnexpectedArgs, args[1].Type)
	}

	return p, nil
}
