package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gokhangunesyou-cmd/qrmenu-sub001/pkg/slug"
)

func TestMake(t *testing.T) {
	cases := map[string]string{
		"Köfte & Kebap Evi":   "kofte-kebap-evi",
		"La Cevichería":       "la-cevicheria",
		"  Pizza   Napoli  ":  "pizza-napoli",
		"Café--Central":       "cafe-central",
		"restaurante 2000":    "restaurante-2000",
		"":                    "",
		"---":                 "",
	}
	for in, want := range cases {
		assert.Equal(t, want, slug.Make(in), "entrada: %q", in)
	}
}
