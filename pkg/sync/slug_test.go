package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Action", "action"},
		{"two words", "Science Fiction", "science-fiction"},
		{"diacritics", "Comédie Dramatique", "comedie-dramatique"},
		{"punctuation run", "Sci-Fi & Fantasy", "sci-fi-fantasy"},
		{"leading and trailing noise", "  War & Politics!  ", "war-politics"},
		{"digits", "Top 10", "top-10"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}
