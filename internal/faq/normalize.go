// Package faq implementa el responder de preguntas frecuentes del chat:
// filtro de dominio por palabras clave, búsqueda aproximada sobre el
// dataset estático y umbral de confianza.
package faq

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxInputRunes es el largo máximo de mensaje que se procesa
const MaxInputRunes = 500

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s]+`)

// Normalize pasa a minúsculas, quita tildes y diacríticos, reemplaza todo
// lo que no sea [a-z0-9] o espacio por un espacio y colapsa los espacios.
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	s = removeAccents(strings.ToLower(s))
	s = nonAlphanumeric.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// Truncate corta s a como máximo n runas
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}
