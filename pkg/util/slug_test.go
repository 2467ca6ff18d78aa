package util

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
		{"Simple name", "Matte Lipstick", "matte-lipstick"},
		{"Special characters", "Rose & Gold Highlighter!", "rose-gold-highlighter"},
		{"Multiple spaces", "Vitamin  C   Serum", "vitamin-c-serum"},
		{"Leading and trailing junk", "  --Kajal--  ", "kajal"},
		{"Digits preserved", "SPF 50 Sunscreen", "spf-50-sunscreen"},
		{"Already a slug", "face-wash", "face-wash"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}
