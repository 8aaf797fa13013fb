package model

// Document is a read-only corpus record (e.g. a product) exposing the
// free-text fields the suggestion engine may mine for candidates. Any
// subset of fields may be empty.
type Document struct {
	Name        string `json:"name"`
	Platform    string `json:"platform,omitempty"`
	Description string `json:"description,omitempty"`
}

type CorrectionType int

const (
	CorrectionNone CorrectionType = iota
	CorrectionExtraLetter
	CorrectionTypo
	CorrectionPhonetic
)

func (t CorrectionType) String() string {
	switch t {
	case CorrectionExtraLetter:
		return "extra_letter"
	case CorrectionTypo:
		return "typo"
	case CorrectionPhonetic:
		return "phonetic"
	default:
		return "none"
	}
}

// CorrectionResult is the verdict for a single query. Immutable once
// produced; served as-is from cache on repeat queries.
type CorrectionResult struct {
	NeedsCorrection bool           `json:"needs_correction"`
	Suggestion      string         `json:"suggestion,omitempty"`
	Confidence      float64        `json:"confidence"`
	Type            CorrectionType `json:"type"`
}
