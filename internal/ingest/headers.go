package ingest

import "strings"

// Canonical column names read by the import pipeline. Source documents
// are expected to carry these headers after reconciliation.
const (
	ColEmail                 = "Email"
	ColClientPhone           = "Client Phone"
	ColEmployeeName          = "Employee Name"
	ColHourlyWage            = "Hourly Wage"
	ColHoursWorked           = "Hours Worked"
	ColBuildingType          = "Building Type"
	ColAddress               = "Address"
	ColJobType               = "Job Type"
	ColAreaSize              = "Painting Area Size (sq ft)"
	ColBodyPaintCost         = "Total Paint Cost (Body)"
	ColTrimPaintCost         = "Total Paint Cost (Trim)"
	ColOtherPaintCost        = "Other Paint Cost"
	ColSuppliesUsed          = "Supplies Used"
	ColSuppliesCost          = "Cost of Supplies"
	ColAdditionalServices    = "Additional Services"
	ColAdditionalServiceCost = "Additional Service Cost"
	ColStartDate             = "Start Date"
	ColEndDate               = "End Date"
	ColTotalGain             = "Total Gain"
	ColDateCreated           = "Date Created"
)

// HeaderMap maps known header defects produced by the source system's
// table extraction onto canonical column names. The mapping is a fixed,
// hand-maintained table, not inferred. A HeaderMap is immutable once
// built; new defects go into a new version.
type HeaderMap struct {
	version string
	defects map[string]string
}

// Version returns the identifier of this mapping table
func (m *HeaderMap) Version() string {
	return m.version
}

// NewHeaderMap builds an immutable header map from a defect table.
// The table is copied, so callers cannot mutate the map afterwards.
func NewHeaderMap(version string, defects map[string]string) *HeaderMap {
	copied := make(map[string]string, len(defects))
	for k, v := range defects {
		copied[k] = v
	}
	return &HeaderMap{version: version, defects: copied}
}

// HeaderMapV1 is the current table of known source-header defects.
// These are real misreads observed in job sheets: a character bleeding
// in from an adjacent column, truncated trailing characters, and
// doubled leading characters.
func HeaderMapV1() *HeaderMap {
	return NewHeaderMap("v1", map[string]string{
		"EmailClient":               ColEmail,
		"lient Phone":               ColClientPhone,
		"Client Phon":               ColClientPhone,
		"Employee Nam":              ColEmployeeName,
		"EEmployee Name":            ColEmployeeName,
		"Painting Area Size (sq ft": ColAreaSize,
		"Painting Area Size (sqft)": ColAreaSize,
		"Total Paint Cost (Body":    ColBodyPaintCost,
		"Total Paint Cost (Trim":    ColTrimPaintCost,
		"Cost of Supplie":           ColSuppliesCost,
		"Additional Servicess":      ColAdditionalServices,
		"Additional Service Costt":  ColAdditionalServiceCost,
		"SStart Date":               ColStartDate,
		"EEnd Date":                 ColEndDate,
		"TTotal Gain":               ColTotalGain,
	})
}

// Reconcile normalizes an extracted header row. Every header is trimmed
// of surrounding whitespace; headers matching a known defect are
// replaced by their canonical name; unrecognized headers pass through
// unchanged. The input slice is not modified.
func (m *HeaderMap) Reconcile(headers []string) []string {
	out := make([]string, len(headers))
	for i, h := range headers {
		h = strings.TrimSpace(h)
		if canonical, ok := m.defects[h]; ok {
			h = canonical
		}
		out[i] = h
	}
	return out
}
