package slugify

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"accents stripped", "Zé's Burger", "ze-s-burger"},
		{"plain lowercase", "bar do joao", "bar-do-joao"},
		{"symbols removed", "Pizza & Cia!!!", "pizza-cia"},
		{"whitespace collapsed", "  Doce   Sabor  ", "doce-sabor"},
		{"cedilla", "Açaí da Praça", "acai-da-praca"},
		{"hyphens kept", "X-Tudo do Zé", "x-tudo-do-ze"},
		{"empty falls back", "!!!", "menu"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.in))
		})
	}
}

func TestDerive_Shape(t *testing.T) {
	pattern := regexp.MustCompile(`^ze-s-burger-[a-z0-9]{4}$`)

	for i := 0; i < 100; i++ {
		slug := Derive("Zé's Burger")
		assert.Regexp(t, pattern, slug)
	}
}

func TestDerive_IdenticalNamesDiverge(t *testing.T) {
	// Direct collision odds for two 4-char suffixes are ~1 in 1.7M.
	a := Derive("Zé's Burger")
	b := Derive("Zé's Burger")

	assert.NotEqual(t, a, b)
}

func TestDerive_SuffixSpaceIsWellSpread(t *testing.T) {
	// 10k draws over 36^4 possibilities collide ~30 times by the birthday
	// bound; anything near-total duplication would indicate a broken RNG.
	// Persistence-level uniqueness is guaranteed by the unique index plus
	// retry in the onboarding use case.
	const n = 10000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		seen[Derive("Zé's Burger")] = struct{}{}
	}

	assert.GreaterOrEqual(t, len(seen), n-100)
}

func TestNormalize_CapsLength(t *testing.T) {
	long := "Churrascaria e Pizzaria e Hamburgueria e Sorveteria do Seu Zé da Esquina"

	got := Normalize(long)

	assert.LessOrEqual(t, len(got), MaxBaseLength)
	assert.NotRegexp(t, `-$`, got)
}
