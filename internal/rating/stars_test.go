package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sales-dashboard/internal/models"
)

func TestStars(t *testing.T) {
	tests := []struct {
		value float64
		want  models.Stars
	}{
		{0, models.Stars{Full: 0, Partial: false, Empty: 4}},
		{0.24, models.Stars{Full: 0, Partial: false, Empty: 4}},
		{0.25, models.Stars{Full: 0, Partial: true, Empty: 4}},
		{3.26, models.Stars{Full: 3, Partial: true, Empty: 1}},
		{3.8, models.Stars{Full: 3, Partial: true, Empty: 1}},
		{4.1, models.Stars{Full: 4, Partial: false, Empty: 0}},
		{5, models.Stars{Full: 5, Partial: false, Empty: 0}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Stars(tt.value), "Stars(%v)", tt.value)
	}
}
