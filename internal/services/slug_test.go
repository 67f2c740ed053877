package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"About us", "about-us"},
		{"  Trimmed  Title  ", "trimmed-title"},
		{"Prix & Devis", "prix-devis"},
		{"Already-Slugged", "already-slugged"},
		{"Ünïcôde dropped", "ncde-dropped"},
		{"???", ""},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "Slugify(%q)", tc.in)
	}
}
