package fingerprint

import (
	"github.com/richxcame/fraudwatch/pkg/models"
)

// DefaultSimilarityThreshold is the similarity ratio at or above which two
// devices are considered likely the same physical device.
const DefaultSimilarityThreshold = 0.85

// comparedFields is the fixed set of attributes the similarity ratio is
// computed over. The denominator is always len(comparedFields), regardless
// of how many fields are populated.
var comparedFields = []func(*models.Device) string{
	func(d *models.Device) string { return d.OS },
	func(d *models.Device) string { return d.Browser },
	func(d *models.Device) string { return d.ScreenResolution },
	func(d *models.Device) string { return d.Timezone },
}

// ComparisonResult is the outcome of comparing two device fingerprints
type ComparisonResult struct {
	Similarity float64 `json:"similarity"`
	Related    bool    `json:"related"`
}

// Matcher compares device fingerprints for similarity
type Matcher struct {
	threshold float64
}

// NewMatcher creates a matcher with the default similarity threshold
func NewMatcher() *Matcher {
	return &Matcher{threshold: DefaultSimilarityThreshold}
}

// Similarity returns the fraction of compared fields with equal values,
// always in [0, 1] in increments of 0.25. Fields are compared by direct
// equality, so two devices missing the same attribute (both empty) count as
// a match.
func (m *Matcher) Similarity(a, b *models.Device) float64 {
	if a == nil || b == nil {
		return 0.0
	}

	matches := 0
	for _, field := range comparedFields {
		if field(a) == field(b) {
			matches++
		}
	}

	return float64(matches) / float64(len(comparedFields))
}

// Related reports whether two devices are likely the same device
func (m *Matcher) Related(a, b *models.Device) bool {
	return m.Similarity(a, b) >= m.threshold
}

// Compare runs a full comparison and returns both the ratio and the verdict
func (m *Matcher) Compare(a, b *models.Device) ComparisonResult {
	similarity := m.Similarity(a, b)
	return ComparisonResult{
		Similarity: similarity,
		Related:    similarity >= m.threshold,
	}
}
