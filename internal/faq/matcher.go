package faq

import (
	"errors"
	"fmt"

	"github.com/Maxito7/marea_backend/internal/domain"
)

const (
	OffDomainText     = "Solo puedo ayudarte con consultas sobre el Restaurante La Marea o la Cooperativa Costa Viva."
	NoMatchText       = "No encontré una respuesta exacta a tu consulta. ¿Podrías reformularla?"
	LowConfidenceText = "No estoy seguro de haber entendido tu consulta. Puedes preguntarme por reservas, " +
		"horarios, el menú, nuestra ubicación o las actividades de la cooperativa."
)

// Config agrupa los parámetros de ajuste del buscador. Los valores numéricos
// son de ajuste: lo que importa es que AcceptThreshold sea más estricto que
// MatchThreshold y que la pregunta pese más que las etiquetas y la respuesta.
type Config struct {
	// MatchThreshold es la distancia máxima para que una palabra coincida con un token (recall)
	MatchThreshold float64
	// AcceptThreshold es el puntaje máximo para entregar una respuesta (precision)
	AcceptThreshold float64

	QuestionWeight float64
	TagsWeight     float64
	AnswerWeight   float64
}

func DefaultConfig() Config {
	return Config{
		MatchThreshold:  0.6,
		AcceptThreshold: 0.35,
		QuestionWeight:  1.0,
		TagsWeight:      0.8,
		AnswerWeight:    0.5,
	}
}

func (c Config) Validate() error {
	if c.MatchThreshold <= 0 || c.MatchThreshold > 1 {
		return fmt.Errorf("match threshold must be in (0, 1], got %v", c.MatchThreshold)
	}
	if c.AcceptThreshold < 0 || c.AcceptThreshold > c.MatchThreshold {
		return fmt.Errorf("accept threshold must be in [0, %v], got %v", c.MatchThreshold, c.AcceptThreshold)
	}
	for name, w := range map[string]float64{
		"question": c.QuestionWeight,
		"tags":     c.TagsWeight,
		"answer":   c.AnswerWeight,
	} {
		if w <= 0 || w > 1 {
			return fmt.Errorf("%s weight must be in (0, 1], got %v", name, w)
		}
	}
	return nil
}

// Matcher responde mensajes del chat a partir del dataset. Es inmutable una
// vez construido, por lo que puede compartirse entre goroutines.
type Matcher struct {
	corpus  []domain.FaqEntry
	allowed map[string]struct{}
	index   *Index
	cfg     Config
}

// NewMatcher construye el índice. Falla si el dataset o la lista de palabras
// permitidas están vacíos o si la configuración no es válida.
func NewMatcher(corpus []domain.FaqEntry, allowedKeywords []string, cfg Config) (*Matcher, error) {
	if len(corpus) == 0 {
		return nil, errors.New("faq corpus is empty")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid faq config: %w", err)
	}

	entries := make([]domain.FaqEntry, len(corpus))
	for i, e := range corpus {
		if Normalize(e.Question) == "" || e.Answer == "" {
			return nil, fmt.Errorf("faq entry %d has empty question or answer", i)
		}
		e.Tags = append([]string(nil), e.Tags...)
		entries[i] = e
	}

	allowed := make(map[string]struct{}, len(allowedKeywords))
	for _, kw := range allowedKeywords {
		if n := Normalize(kw); n != "" {
			allowed[n] = struct{}{}
		}
	}
	if len(allowed) == 0 {
		return nil, errors.New("allowed keyword set is empty")
	}

	return &Matcher{
		corpus:  entries,
		allowed: allowed,
		index:   newIndex(entries, allowed, cfg),
		cfg:     cfg,
	}, nil
}

// NewDefaultMatcher usa el dataset y la lista de palabras incluidos en el binario
func NewDefaultMatcher(cfg Config) (*Matcher, error) {
	return NewMatcher(DefaultCorpus(), DefaultAllowedKeywords, cfg)
}

// InDomain indica si al menos una palabra clave del texto está permitida
func (m *Matcher) InDomain(text string) bool {
	for _, kw := range ExtractKeywords(text) {
		if _, ok := m.allowed[kw]; ok {
			return true
		}
	}
	return false
}

// Search devuelve el mejor candidato del índice sin aplicar el filtro de dominio
func (m *Matcher) Search(text string) (Candidate, bool) {
	return m.index.Best(text)
}

// ClassifyAndAnswer decide entre una respuesta del dataset y un fallback.
// El llamador debe truncar el texto a MaxInputRunes.
func (m *Matcher) ClassifyAndAnswer(text string) domain.MatchResult {
	if !m.InDomain(text) {
		return fallback(OffDomainText, domain.ReasonOffDomain, 1)
	}

	best, ok := m.index.Best(text)
	if !ok {
		return fallback(NoMatchText, domain.ReasonNoMatch, 1)
	}
	if best.Score > m.cfg.AcceptThreshold {
		return fallback(LowConfidenceText, domain.ReasonLowConfidence, best.Score)
	}

	entry := best.Entry
	return domain.MatchResult{
		Kind:  domain.MatchKindAnswer,
		Text:  entry.Answer,
		Entry: &entry,
		Score: best.Score,
	}
}

// Entries devuelve una copia del dataset
func (m *Matcher) Entries() []domain.FaqEntry {
	out := make([]domain.FaqEntry, len(m.corpus))
	for i, e := range m.corpus {
		e.Tags = append([]string(nil), e.Tags...)
		out[i] = e
	}
	return out
}

func fallback(text string, reason domain.FallbackReason, score float64) domain.MatchResult {
	return domain.MatchResult{
		Kind:   domain.MatchKindFallback,
		Text:   text,
		Score:  score,
		Reason: reason,
	}
}
