package domain

import (
	"sort"
	"strings"
)

// resourceAliases maps native barber labels (as the booking backend knows
// them) to stable ASCII ids used in cache keys and overlap filtering
var resourceAliases = map[string]string{
	"λεμο":  "lemo",
	"φορου": "forou",
}

// resourceLabels is the reverse mapping, ascii id to native label
var resourceLabels = map[string]string{
	"lemo":  "ΛΕΜΟ",
	"forou": "ΦΟΡΟΥ",
}

// NormalizeResource maps a barber identifier in either representation
// (ascii id or native label, any case) to its canonical ascii id.
// Unknown identifiers are lowercased and used as-is; "" stays "".
func NormalizeResource(raw string) string {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	if canonical, ok := resourceAliases[lowered]; ok {
		return canonical
	}
	return lowered
}

// ResourceLabel returns the native label the booking backend expects for a
// canonical ascii id. Unknown ids are returned unchanged.
func ResourceLabel(id string) string {
	if label, ok := resourceLabels[NormalizeResource(id)]; ok {
		return label
	}
	return id
}

// Resources returns the known canonical resource ids in stable order.
func Resources() []string {
	ids := make([]string, 0, len(resourceLabels))
	for id := range resourceLabels {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SameResource compares two resource identifiers after normalization.
// An empty (unscoped) identifier on either side matches everything.
func SameResource(a, b string) bool {
	na, nb := NormalizeResource(a), NormalizeResource(b)
	if na == "" || nb == "" {
		return true
	}
	return na == nb
}
