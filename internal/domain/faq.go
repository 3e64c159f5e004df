package domain

import "fmt"

// FaqDomain identifica a qué negocio pertenece una pregunta frecuente
type FaqDomain string

const (
	FaqDomainRestaurant  FaqDomain = "restaurant"
	FaqDomainCooperative FaqDomain = "cooperative"
)

// ParseFaqDomain convierte el valor recibido por query string a FaqDomain
func ParseFaqDomain(s string) (FaqDomain, error) {
	switch FaqDomain(s) {
	case FaqDomainRestaurant, FaqDomainCooperative:
		return FaqDomain(s), nil
	default:
		return "", fmt.Errorf("dominio desconocido: %q", s)
	}
}

// FaqEntry es una pregunta frecuente del dataset estático. No se modifica en runtime.
type FaqEntry struct {
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
	Tags     []string  `json:"tags"`
	Domain   FaqDomain `json:"domain"`
}

// MatchKind distingue una respuesta de un fallback
type MatchKind string

const (
	MatchKindAnswer   MatchKind = "answer"
	MatchKindFallback MatchKind = "fallback"
)

// FallbackReason indica por qué no se entregó una respuesta
type FallbackReason string

const (
	ReasonNone          FallbackReason = ""
	ReasonOffDomain     FallbackReason = "off_domain"
	ReasonNoMatch       FallbackReason = "no_match"
	ReasonLowConfidence FallbackReason = "low_confidence"
)

// MatchResult es el resultado de clasificar un mensaje del usuario.
// Entry solo está presente cuando Kind es MatchKindAnswer.
type MatchResult struct {
	Kind   MatchKind      `json:"kind"`
	Text   string         `json:"text"`
	Entry  *FaqEntry      `json:"matchedEntry,omitempty"`
	Score  float64        `json:"score"`
	Reason FallbackReason `json:"reason,omitempty"`
}

// IsAnswer indica si el resultado es una respuesta del dataset
func (r MatchResult) IsAnswer() bool {
	return r.Kind == MatchKindAnswer
}
