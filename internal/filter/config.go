package filter

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/soopatree/balloon/internal/common"
)

// DateInputLayout is the layout of user-supplied range bounds.
const DateInputLayout = "2006-01-02"

var validate = validator.New()

// Config is the user-facing filter state, as read from flags or config.
type Config struct {
	MinAmount *int64 `mapstructure:"min" validate:"omitempty,gte=0"`
	MaxAmount *int64 `mapstructure:"max" validate:"omitempty,gte=0"`
	Preset    string `mapstructure:"preset" validate:"omitempty,oneof=all 1day 7days 30days 90days 365days custom"`
	StartDate string `mapstructure:"start" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `mapstructure:"end" validate:"omitempty,datetime=2006-01-02"`
}

// Resolved is a validated filter configuration with concrete ranges.
type Resolved struct {
	Dates   DateRange
	Amounts AmountRange
	Preset  Preset
}

// Set returns the predicates for an aggregation run.
func (r Resolved) Set() Set {
	s := None()
	if !r.Dates.IsZero() {
		s.Date = r.Dates.Contains
	}
	if !r.Amounts.IsZero() {
		s.Amount = r.Amounts.Contains
	}
	return s
}

// Validate checks field formats and cross-field consistency.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, formatFieldError(fe))
			}
			return fmt.Errorf("%w: %s", common.ErrInvalidFilter, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", common.ErrInvalidFilter, err)
	}

	if c.MinAmount != nil && c.MaxAmount != nil && *c.MinAmount > *c.MaxAmount {
		return fmt.Errorf("%w: min %d is greater than max %d", common.ErrInvalidFilter, *c.MinAmount, *c.MaxAmount)
	}

	if c.StartDate != "" && c.EndDate != "" && c.StartDate > c.EndDate {
		return fmt.Errorf("%w: start %s is after end %s", common.ErrInvalidFilter, c.StartDate, c.EndDate)
	}

	if (c.StartDate != "" || c.EndDate != "") && c.Preset != "" && c.Preset != string(PresetCustom) {
		return fmt.Errorf("%w: start/end dates require the custom preset, got %q", common.ErrInvalidFilter, c.Preset)
	}

	return nil
}

// Resolve validates the configuration and computes its ranges relative to now.
func (c Config) Resolve(now time.Time) (Resolved, error) {
	if err := c.Validate(); err != nil {
		return Resolved{}, err
	}

	preset := Preset(c.Preset)
	if preset == "" {
		preset = PresetAll
		if c.StartDate != "" || c.EndDate != "" {
			preset = PresetCustom
		}
	}

	start, err := parseBound(c.StartDate)
	if err != nil {
		return Resolved{}, err
	}
	end, err := parseBound(c.EndDate)
	if err != nil {
		return Resolved{}, err
	}

	return Resolved{
		Preset:  preset,
		Dates:   preset.Range(now, start, end),
		Amounts: AmountRange{Min: c.MinAmount, Max: c.MaxAmount},
	}, nil
}

func parseBound(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(DateInputLayout, value)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidFilter, err)
	}
	return &t, nil
}

func formatFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "datetime":
		return fmt.Sprintf("%s must be a date like %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
