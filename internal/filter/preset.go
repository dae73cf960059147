package filter

import (
	"fmt"
	"time"

	"github.com/soopatree/balloon/internal/common"
)

// Preset is a named date window relative to today.
type Preset string

// Date presets.
const (
	PresetAll     Preset = "all"
	Preset1Day    Preset = "1day"
	Preset7Days   Preset = "7days"
	Preset30Days  Preset = "30days"
	Preset90Days  Preset = "90days"
	Preset365Days Preset = "365days"
	PresetCustom  Preset = "custom"
)

// Presets lists every preset in display order.
var Presets = []Preset{
	PresetAll,
	Preset1Day,
	Preset7Days,
	Preset30Days,
	Preset90Days,
	Preset365Days,
	PresetCustom,
}

var presetDays = map[Preset]int{
	Preset1Day:    1,
	Preset7Days:   7,
	Preset30Days:  30,
	Preset90Days:  90,
	Preset365Days: 365,
}

var presetLabels = map[Preset]string{
	Preset1Day:    "(최근 1일)",
	Preset7Days:   "(최근 1주일)",
	Preset30Days:  "(최근 1개월)",
	Preset90Days:  "(최근 3개월)",
	Preset365Days: "(최근 1년)",
	PresetCustom:  "(지정 기간)",
}

// ParsePreset validates a preset name. The empty string means PresetAll.
func ParsePreset(name string) (Preset, error) {
	if name == "" {
		return PresetAll, nil
	}
	for _, p := range Presets {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: unknown date preset %q", common.ErrInvalidFilter, name)
}

// Label is the short description shown next to an active range.
func (p Preset) Label() string {
	return presetLabels[p]
}

// Range turns the preset into a date range. Relative presets end today and
// start N days earlier. A custom range with only a start ends today.
func (p Preset) Range(today time.Time, start, end *time.Time) DateRange {
	today = Day(today)

	switch p {
	case PresetAll:
		return DateRange{}
	case PresetCustom:
		if start == nil && end == nil {
			return DateRange{}
		}
		if start != nil && end == nil {
			end = &today
		}
		return DateRange{Start: start, End: end}
	}

	days, ok := presetDays[p]
	if !ok {
		return DateRange{}
	}
	from := today.AddDate(0, 0, -days)
	return DateRange{Start: &from, End: &today}
}
