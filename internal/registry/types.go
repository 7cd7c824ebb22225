package registry

// ResponseType enumerates the answer formats an interview question can declare.
type ResponseType int

const (
	ResponseYesNo ResponseType = iota
	ResponseScale
	ResponseMultipleChoice
	ResponseText
	ResponseDate
)

// String returns the wire label for a response type.
func (t ResponseType) String() string {
	switch t {
	case ResponseYesNo:
		return "yes_no"
	case ResponseScale:
		return "scale"
	case ResponseMultipleChoice:
		return "multiple_choice"
	case ResponseText:
		return "text"
	case ResponseDate:
		return "date"
	default:
		return "unknown"
	}
}

// Severity represents a diagnostic severity band assigned once a module's
// criteria are met.
type Severity int

const (
	SeverityMild Severity = iota
	SeverityModerate
	SeveritySevere
	SeverityExtreme
)

// String returns the wire label for a severity band.
func (s Severity) String() string {
	switch s {
	case SeverityMild:
		return "mild"
	case SeverityModerate:
		return "moderate"
	case SeveritySevere:
		return "severe"
	case SeverityExtreme:
		return "extreme"
	default:
		return "unknown"
	}
}

// ParseSeverity maps a patient-reported severity label to a Severity band.
// Returns false for labels outside the closed set.
func ParseSeverity(label string) (Severity, bool) {
	switch label {
	case "mild":
		return SeverityMild, true
	case "moderate":
		return SeverityModerate, true
	case "severe":
		return SeveritySevere, true
	case "extreme":
		return SeverityExtreme, true
	default:
		return 0, false
	}
}

// AllSeverities returns the severity bands from mildest to most extreme.
func AllSeverities() []Severity {
	return []Severity{SeverityMild, SeverityModerate, SeveritySevere, SeverityExtreme}
}

// Question is a single structured-interview question within a module.
type Question struct {
	ID              string
	Text            string
	SimpleText      string // Layman phrasing, used for fingerprinting
	ResponseType    ResponseType
	Options         []string
	ScaleMin        int
	ScaleMax        int
	Required        bool
	CriteriaWeight  float64
	SymptomCategory string
	HelpText        string
	Examples        []string
}
