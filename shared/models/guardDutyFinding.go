package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
)

// Finding is the `detail` of a GuardDuty Finding event.
type Finding struct {
	Type        string        `json:"type"`
	Description string        `json:"description"`
	UpdatedAt   string        `json:"updatedAt"`
	AccountID   string        `json:"accountId"`
	Region      string        `json:"region"`
	ID          string        `json:"id"`
	Severity    SeverityScore `json:"severity"`
}

// SeverityScore is NaN whenever the event carries no usable number.
type SeverityScore float64

func (s *SeverityScore) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			*s = SeverityScore(math.NaN())
			return nil
		}
		b = []byte(str)
	}

	// out of range numbers parse to ±Inf and still compare as scores
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		*s = SeverityScore(math.NaN())
		return nil
	}
	*s = SeverityScore(f)
	return nil
}

// ParseFinding decodes an event detail. A detail without a severity key
// still decodes; its score is NaN.
func ParseFinding(detail []byte) (Finding, error) {
	f := Finding{Severity: SeverityScore(math.NaN())}
	if err := json.Unmarshal(detail, &f); err != nil {
		return Finding{}, err
	}
	return f, nil
}
