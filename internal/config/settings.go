package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/soopatree/balloon/internal/common"
	"github.com/soopatree/balloon/internal/filter"
	"github.com/spf13/viper"
)

// Viper keys.
const (
	KeyLogLevel        = "logging.level"
	KeyLogFormat       = "logging.format"
	KeyShape           = "input.shape"
	KeyEncoding        = "input.encoding"
	KeyPreset          = "filter.preset"
	KeyStart           = "filter.start"
	KeyEnd             = "filter.end"
	KeyMin             = "filter.min"
	KeyMax             = "filter.max"
	KeyExportDir       = "export.dir"
	KeyExportXLSX      = "export.xlsx"
	KeyKeepManualOrder = "order.keep_manual"
)

var validate = validator.New()

// Settings is everything a command needs besides its arguments.
type Settings struct {
	Shape           string `validate:"omitempty,oneof=donor dated"`
	Encoding        string `validate:"omitempty,oneof=auto utf-8 utf8 euc-kr cp949"`
	ExportDir       string `validate:"required"`
	Filter          filter.Config
	XLSX            bool
	KeepManualOrder bool
}

// SetDefaults registers default values for every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyShape, "donor")
	v.SetDefault(KeyEncoding, "auto")
	v.SetDefault(KeyExportDir, ".")
	v.SetDefault(KeyExportXLSX, false)
	v.SetDefault(KeyKeepManualOrder, true)
}

// Load reads and validates settings from v.
func Load(v *viper.Viper) (Settings, error) {
	filterCfg, err := LoadFilter(v)
	if err != nil {
		return Settings{}, err
	}

	s := Settings{
		Shape:           strings.ToLower(v.GetString(KeyShape)),
		Encoding:        strings.ToLower(v.GetString(KeyEncoding)),
		ExportDir:       ExpandPath(v.GetString(KeyExportDir)),
		Filter:          filterCfg,
		XLSX:            v.GetBool(KeyExportXLSX),
		KeepManualOrder: v.GetBool(KeyKeepManualOrder),
	}

	if err := validate.Struct(s); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
			}
			return Settings{}, fmt.Errorf("%w: %s", common.ErrInvalidConfig, strings.Join(msgs, "; "))
		}
		return Settings{}, fmt.Errorf("%w: %v", common.ErrInvalidConfig, err)
	}
	return s, nil
}

// LoadFilter reads the filter keys into a validated filter.Config.
func LoadFilter(v *viper.Viper) (filter.Config, error) {
	cfg := filter.Config{
		Preset:    strings.ToLower(v.GetString(KeyPreset)),
		StartDate: v.GetString(KeyStart),
		EndDate:   v.GetString(KeyEnd),
	}

	var err error
	if cfg.MinAmount, err = optionalInt(v, KeyMin); err != nil {
		return filter.Config{}, err
	}
	if cfg.MaxAmount, err = optionalInt(v, KeyMax); err != nil {
		return filter.Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return filter.Config{}, err
	}
	return cfg, nil
}

// optionalInt treats an unset or blank key as no bound.
func optionalInt(v *viper.Viper, key string) (*int64, error) {
	if !v.IsSet(key) || strings.TrimSpace(v.GetString(key)) == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v.GetString(key)), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a whole number, got %q", common.ErrInvalidFilter, key, v.GetString(key))
	}
	return &n, nil
}
