package constants

import "hash/fnv"

// groupPalette is the fixed set of colors system country groups draw from.
var groupPalette = []string{
	"#3B82F6", // blue
	"#F97316", // orange
	"#EF4444", // red
	"#10B981", // emerald
	"#8B5CF6", // violet
	"#14B8A6", // teal
	"#F59E0B", // amber
	"#6366F1", // indigo
}

// DefaultGroupColor is used for user-created groups when no color is given.
const DefaultGroupColor = "#6366F1"

// ColorForCountry picks a palette entry for a country calling code, e.g. "+44".
// The same code always maps to the same color.
func ColorForCountry(countryCode string) string {
	if countryCode == "" {
		return DefaultGroupColor
	}
	h := fnv.New32a()
	h.Write([]byte(countryCode))
	return groupPalette[h.Sum32()%uint32(len(groupPalette))]
}
