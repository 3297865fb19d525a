package spec

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// decimalShape matches a decimal-formatted string: optional surrounding
// whitespace, optional sign, digits with a single optional decimal point, at
// least one digit overall. Scientific notation is not accepted.
var decimalShape = regexp.MustCompile(`^\s*[+-]?(\d+(\.\d*)?|\.\d+)\s*$`)

// DecimalOptions configures a decimal-string spec. Bounds are given as
// decimal-formatted strings (empty means unset) and parsed once at
// construction; the same conflict and ordering rules as IntOptions apply.
type DecimalOptions struct {
	// Nullable makes the spec accept nil values.
	Nullable bool
	// Check is an optional extra predicate applied after the base check.
	Check Predicate

	// GT, GTE, LT, LTE bound the accepted values when non-empty.
	GT, GTE, LT, LTE string

	// MaxDecimalPlaces caps the number of fractional digits when non-nil.
	// It must be positive.
	MaxDecimalPlaces *int

	// Message overrides the composed failure message. Every value-time rule
	// violation reports this single message.
	Message string
}

type decimalSpec struct {
	b      bounds[decimal.Decimal]
	places *int
	msg    string
}

// Decimal builds a spec that accepts decimal-formatted strings satisfying
// the configured bounds and fractional-digit cap. All value-time failures
// collapse to one message composed here at construction (or supplied via
// Message).
func Decimal(opts DecimalOptions) (*Spec, error) {
	gt, err := parseDecimalBound("gt", opts.GT)
	if err != nil {
		return nil, err
	}
	gte, err := parseDecimalBound("gte", opts.GTE)
	if err != nil {
		return nil, err
	}
	lt, err := parseDecimalBound("lt", opts.LT)
	if err != nil {
		return nil, err
	}
	lte, err := parseDecimalBound("lte", opts.LTE)
	if err != nil {
		return nil, err
	}

	b := bounds[decimal.Decimal]{
		gt:     gt,
		gte:    gte,
		lt:     lt,
		lte:    lte,
		cmp:    decimal.Decimal.Cmp,
		format: decimal.Decimal.String,
	}
	if err := b.normalize(); err != nil {
		return nil, err
	}

	if opts.MaxDecimalPlaces != nil && *opts.MaxDecimalPlaces < 1 {
		return nil, fmt.Errorf("%w: max_decimal_places must be a positive integer", ErrInvalidOption)
	}

	msg := opts.Message
	if msg == "" {
		var clauses []string
		if opts.MaxDecimalPlaces != nil {
			clauses = append(clauses, fmt.Sprintf("with up to %d decimal places", *opts.MaxDecimalPlaces))
		}
		clauses = append(clauses, b.clauses()...)

		msg = "must be a decimal-formatted string"
		if len(clauses) > 0 {
			msg += " " + joinClauses(clauses)
		}
		msg = typeMessage(msg, opts.Nullable)
	}

	return &Spec{
		nullable: opts.Nullable,
		pred:     opts.Check,
		v: &decimalSpec{
			b:      b,
			places: opts.MaxDecimalPlaces,
			msg:    msg,
		},
	}, nil
}

// MustDecimal is like Decimal but panics on a construction error.
func MustDecimal(opts DecimalOptions) *Spec {
	return must(Decimal(opts))
}

func (d *decimalSpec) kind() Kind { return KindDecimal }

func (d *decimalSpec) check(value any, _ int) error {
	s, ok := value.(string)
	if !ok || !decimalShape.MatchString(s) {
		return Violations{{Message: d.msg}}
	}

	trimmed := strings.TrimSpace(s)
	if d.places != nil && fractionDigits(trimmed) > *d.places {
		return Violations{{Message: d.msg}}
	}

	n, err := decimal.NewFromString(normalizeDecimal(trimmed))
	if err != nil || !d.b.holds(n) {
		return Violations{{Message: d.msg}}
	}
	return nil
}

func parseDecimalBound(name, raw string) (*decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}
	if !decimalShape.MatchString(raw) {
		return nil, fmt.Errorf("%w: %s is not a decimal-formatted string", ErrInvalidBounds, name)
	}
	d, err := decimal.NewFromString(normalizeDecimal(strings.TrimSpace(raw)))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidBounds, name, err)
	}
	return &d, nil
}

// normalizeDecimal pads a trailing decimal point so the string parses as a
// decimal value. The caller must have checked the shape already.
func normalizeDecimal(s string) string {
	if strings.HasSuffix(s, ".") {
		return s + "0"
	}
	return s
}

// fractionDigits counts digits after the decimal point, splitting the string
// on the point itself.
func fractionDigits(s string) int {
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return 0
	}
	return len(s) - i - 1
}
