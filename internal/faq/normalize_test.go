package faq

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "RESERVA", "reserva"},
		{"accents", "ubicación", "ubicacion"},
		{"enie", "Cumpleaños", "cumpleanos"},
		{"question marks", "¿Cómo hago una reserva?", "como hago una reserva"},
		{"collapse whitespace", "  menú \t\n  del   día ", "menu del dia"},
		{"symbols become spaces", "horario:martes-domingo", "horario martes domingo"},
		{"digits kept", "mesa para 4", "mesa para 4"},
		{"empty", "", ""},
		{"only symbols", "¡¿?!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"¿Cómo hago una reserva?",
		"ÁÉÍÓÚ ñ ü",
		"  mareas\ty   pleamar  ",
		"voluntariado@costaviva.cl",
		"日本語 y más",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "ab", Truncate("abc", 2))
	assert.Equal(t, "ñá", Truncate("ñáé", 2))
	assert.Equal(t, "", Truncate("abc", 0))

	long := strings.Repeat("á", MaxInputRunes+10)
	assert.Equal(t, MaxInputRunes, len([]rune(Truncate(long, MaxInputRunes))))
}

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"stopwords removed", "¿Cómo reservo una mesa?", []string{"reservo", "mesa"}},
		{"digits removed", "mesa para 4 personas", []string{"mesa", "personas"}},
		{"deduplicated", "Mareas, mareas y MAREAS", []string{"mareas"}},
		{"normalized", "Ubicación en Chiloé", []string{"ubicacion", "chiloe"}},
		{"empty", "   ", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractKeywords(tt.in))
		})
	}
}
