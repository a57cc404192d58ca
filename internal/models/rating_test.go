package models

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestStars_Glyphs(t *testing.T) {
	tests := []struct {
		stars Stars
		want  string
	}{
		{Stars{Full: 0, Empty: 4}, "☆☆☆☆☆"},
		{Stars{Full: 0, Partial: true, Empty: 4}, "⯪☆☆☆☆"},
		{Stars{Full: 3, Empty: 1}, "★★★☆☆"},
		{Stars{Full: 3, Partial: true, Empty: 1}, "★★★⯪☆"},
		{Stars{Full: 4, Empty: 0}, "★★★★☆"},
		{Stars{Full: 5, Empty: 0}, "★★★★★"},
	}

	for _, tt := range tests {
		got := tt.stars.Glyphs()
		assert.Equal(t, tt.want, got, "%+v", tt.stars)
		assert.Equal(t, 5, utf8.RuneCountInString(got), "%+v", tt.stars)
	}
}
