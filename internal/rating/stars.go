package rating

import (
	"math"

	"sales-dashboard/internal/models"
)

const partialStarThreshold = 0.25

// Stars maps a rounded rating onto a five-glyph star display.
func Stars(value float64) models.Stars {
	value = math.Min(math.Max(value, 0), MaxRating)

	full := int(math.Floor(value))
	frac := value - float64(full)

	return models.Stars{
		Full:    full,
		Partial: frac >= partialStarThreshold,
		Empty:   max(int(MaxRating)-full-1, 0),
	}
}
