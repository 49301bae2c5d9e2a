package token

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
)

type rawPayload struct {
	P    string  `mapstructure:"p"`    // required
	Op   string  `mapstructure:"op"`   // required
	Tick *string `mapstructure:"tick"` // required

	// for deploy operations
	Max *string `mapstructure:"max"` // required
	Lim *string `mapstructure:"lim"`
	Dec *string `mapstructure:"dec"`

	// for mint/transfer operations
	Amt *string `mapstructure:"amt"` // required
}

type Payload struct {
	P            string
	Op           Operation
	Tick         string // lower-cased tick
	OriginalTick string // original tick before lower-cased

	// for deploy operations
	Max decimal.Decimal
	Lim decimal.Decimal
	Dec uint16

	// for mint/transfer operations
	Amt decimal.Decimal
}

const (
	MaxTickLength   = 16
	DefaultDecimals = 18
)

var (
	ErrInvalidProtocol   = errors.New("invalid protocol")
	ErrInvalidOperation  = errors.New("invalid operation: must be one of 'deploy', 'mint', or 'transfer'")
	ErrInvalidTickLength = errors.New("invalid tick length: must be 1 to 16 characters")
	ErrEmptyTick         = errors.New("empty tick")
	ErrEmptyMax          = errors.New("empty max")
	ErrInvalidMax        = errors.New("invalid max")
	ErrInvalidLim        = errors.New("invalid lim")
	ErrInvalidDec        = errors.New("invalid dec")
	ErrInvalidAmt        = errors.New("invalid amt")
	ErrInvalidNumber     = errors.New("invalid number: must be a plain base-10 string")
	ErrNumberOverflow    = errors.New("number overflow: max value is (2^64-1)")
)

// ParsePayload validates the shape of a token operation. Rules that depend on the token state
// (decimals of an existing tick, limits, balances) are checked by the caller.
func ParsePayload(protocol string, data map[string]any) (*Payload, error) {
	var p rawPayload
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &p,
		WeaklyTypedInput: false,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create payload decoder")
	}
	if err := decoder.Decode(data); err != nil {
		return nil, errors.Wrap(err, "failed to decode payload")
	}

	if p.P != protocol {
		return nil, errors.WithStack(ErrInvalidProtocol)
	}
	if !Operation(p.Op).IsValid() {
		return nil, errors.WithStack(ErrInvalidOperation)
	}
	if p.Tick == nil || *p.Tick == "" {
		return nil, errors.WithStack(ErrEmptyTick)
	}
	if n := utf8.RuneCountInString(*p.Tick); n > MaxTickLength || !utf8.ValidString(*p.Tick) {
		return nil, errors.WithStack(ErrInvalidTickLength)
	}

	parsed := Payload{
		P:            p.P,
		Op:           Operation(p.Op),
		Tick:         strings.ToLower(*p.Tick),
		OriginalTick: *p.Tick,
	}

	switch parsed.Op {
	case OperationDeploy:
		if p.Max == nil || *p.Max == "" {
			return nil, errors.WithStack(ErrEmptyMax)
		}
		rawDec := strconv.Itoa(DefaultDecimals)
		if p.Dec != nil && *p.Dec != "" {
			rawDec = *p.Dec
		}
		dec, err := strconv.ParseUint(rawDec, 10, 16)
		if err != nil {
			return nil, errors.Wrap(ErrInvalidDec, err.Error())
		}
		if dec > DefaultDecimals {
			return nil, errors.WithStack(ErrInvalidDec)
		}
		parsed.Dec = uint16(dec)

		maxSupply, err := parseNumericString(*p.Max, dec)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse max")
		}
		if !maxSupply.IsPositive() {
			return nil, errors.WithStack(ErrInvalidMax)
		}
		parsed.Max = maxSupply

		limit := maxSupply
		if p.Lim != nil {
			limit, err = parseNumericString(*p.Lim, dec)
			if err != nil {
				return nil, errors.Wrap(err, "failed to parse lim")
			}
		}
		if !limit.IsPositive() || limit.GreaterThan(maxSupply) {
			return nil, errors.WithStack(ErrInvalidLim)
		}
		parsed.Lim = limit
	case OperationMint, OperationTransfer:
		if p.Amt == nil || *p.Amt == "" {
			return nil, errors.WithStack(ErrInvalidAmt)
		}
		// NOTE: check tick decimals after parsing payload
		amt, err := parseNumericString(*p.Amt, DefaultDecimals)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse amt")
		}
		if !amt.IsPositive() {
			return nil, errors.WithStack(ErrInvalidAmt)
		}
		parsed.Amt = amt
	default:
		return nil, errors.WithStack(ErrInvalidOperation)
	}
	return &parsed, nil
}

// max number for all numeric fields (except dec) is (2^64-1)
var (
	maxNumber = decimal.NewFromBigInt(new(big.Int).SetUint64(math.MaxUint64), 0)
)

func parseNumericString(s string, maxDec uint64) (decimal.Decimal, error) {
	if strings.ContainsAny(s, "eE+- ") || strings.HasPrefix(s, ".") || strings.HasSuffix(s, ".") {
		return decimal.Decimal{}, errors.WithStack(ErrInvalidNumber)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, errors.Wrap(ErrInvalidNumber, err.Error())
	}
	if -d.Exponent() > int32(maxDec) {
		return decimal.Decimal{}, errors.Errorf("cannot parse decimal number: too many decimal points: expected %d got %d", maxDec, -d.Exponent())
	}
	if d.GreaterThan(maxNumber) {
		return decimal.Decimal{}, errors.WithStack(ErrNumberOverflow)
	}
	return d, nil
}

// CheckDecimals returns true if amt has no more decimal places than dec.
func CheckDecimals(amt decimal.Decimal, dec uint16) bool {
	return -amt.Exponent() <= int32(dec)
}
