package extract

import (
	"iter"
	"regexp"
	"strings"

	"github.com/soopatree/balloon/internal/common"
	"github.com/soopatree/balloon/internal/model"
)

// Extractor finds every record of one shape in raw export text.
type Extractor struct {
	re    *regexp.Regexp
	shape Shape
}

// NewExtractor compiles an extractor for shape.
func NewExtractor(shape Shape) (*Extractor, error) {
	re, err := shape.Compile()
	if err != nil {
		return nil, err
	}
	return &Extractor{re: re, shape: shape}, nil
}

// Shape returns the shape the extractor matches.
func (e *Extractor) Shape() Shape {
	return e.shape
}

// Records returns a lazy sequence over all non-overlapping records in text.
// A leading byte-order mark is ignored. Text without the shape's marker is
// rejected up front with ErrFormat.
func (e *Extractor) Records(text string) (iter.Seq[model.RawRecord], error) {
	text = StripBOM(text)
	if !strings.Contains(text, e.shape.Marker) {
		return nil, common.NewUserError(common.MsgUnsupportedFormat, common.ErrFormat)
	}

	return func(yield func(model.RawRecord) bool) {
		pos := 0
		for pos < len(text) {
			loc := e.re.FindStringSubmatchIndex(text[pos:])
			if loc == nil {
				return
			}
			rec := e.record(text[pos:], loc)
			rec.Offset = pos + loc[0]
			if !yield(rec) {
				return
			}
			pos += loc[1]
		}
	}, nil
}

// record maps the capture groups of one match onto a RawRecord.
func (e *Extractor) record(text string, loc []int) model.RawRecord {
	var rec model.RawRecord
	for i, f := range e.shape.Fields {
		start, end := loc[2*(i+1)], loc[2*(i+1)+1]
		if start < 0 {
			continue
		}
		value := strings.TrimSpace(text[start:end])
		switch f.Role {
		case RoleDate:
			rec.DateToken = value
		case RoleDonor:
			rec.DonorLabel = value
		case RoleAmount:
			rec.AmountToken = value
		case RoleMessage:
			rec.Message = value
		case RoleOutcome:
			rec.OutcomeLabel = value
		}
	}
	return rec
}

// StripBOM removes a leading U+FEFF.
func StripBOM(text string) string {
	return strings.TrimPrefix(text, "\ufeff")
}
