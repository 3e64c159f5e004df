package faq

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/Maxito7/marea_backend/internal/domain"
)

// Candidate es una entrada del dataset con su puntaje: 0 es coincidencia
// exacta y 1 es completamente distinta.
type Candidate struct {
	Entry         domain.FaqEntry
	Score         float64
	QuestionScore float64
	position      int
}

// unlistedKeywordWeight es el peso de una palabra clave que no está en la
// lista de dominio dentro del promedio del puntaje.
const unlistedKeywordWeight = 0.5

type indexedField struct {
	// padded es el texto normalizado entre espacios, para buscar la consulta
	// completa respetando límites de palabra
	padded string
	tokens []string
	weight float64
}

type indexedEntry struct {
	entry    domain.FaqEntry
	question indexedField
	tags     indexedField
	answer   indexedField
}

// Index es el índice de búsqueda aproximada sobre el dataset. Se construye
// una sola vez y es de solo lectura.
type Index struct {
	entries   []indexedEntry
	allowed   map[string]struct{}
	threshold float64
}

func newIndex(corpus []domain.FaqEntry, allowed map[string]struct{}, cfg Config) *Index {
	idx := &Index{
		entries:   make([]indexedEntry, 0, len(corpus)),
		allowed:   allowed,
		threshold: cfg.MatchThreshold,
	}
	for _, e := range corpus {
		idx.entries = append(idx.entries, indexedEntry{
			entry:    e,
			question: newIndexedField(e.Question, cfg.QuestionWeight),
			tags:     newIndexedField(strings.Join(e.Tags, " "), cfg.TagsWeight),
			answer:   newIndexedField(e.Answer, cfg.AnswerWeight),
		})
	}
	return idx
}

// newIndexedField tokeniza el campo con el mismo filtro que la consulta, así
// las palabras de relleno del dataset no compiten con las del usuario.
func newIndexedField(text string, weight float64) indexedField {
	return indexedField{
		padded: " " + Normalize(text) + " ",
		tokens: ExtractKeywords(text),
		weight: weight,
	}
}

// Search devuelve los candidatos ordenados de mejor a peor. Una entrada es
// candidata si al menos una palabra clave coincide con alguno de sus campos.
func (idx *Index) Search(text string) []Candidate {
	query := Normalize(text)
	keywords := ExtractKeywords(query)
	if len(keywords) == 0 {
		return nil
	}

	weights := make([]float64, len(keywords))
	for i, kw := range keywords {
		weights[i] = unlistedKeywordWeight
		if _, ok := idx.allowed[kw]; ok {
			weights[i] = 1
		}
	}

	var candidates []Candidate
	for i, ie := range idx.entries {
		score, ok := idx.score(query, keywords, weights, ie.question, ie.tags, ie.answer)
		if !ok {
			continue
		}
		questionScore, _ := idx.score(query, keywords, weights, ie.question)
		candidates = append(candidates, Candidate{
			Entry:         ie.entry,
			Score:         score,
			QuestionScore: questionScore,
			position:      i,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Score != b.Score {
			return a.Score < b.Score
		}
		if a.QuestionScore != b.QuestionScore {
			return a.QuestionScore < b.QuestionScore
		}
		return a.position < b.position
	})
	return candidates
}

// Best devuelve el mejor candidato, si existe
func (idx *Index) Best(text string) (Candidate, bool) {
	candidates := idx.Search(text)
	if len(candidates) == 0 {
		return Candidate{}, false
	}
	return candidates[0], true
}

// score es el promedio ponderado, sobre las palabras clave, de la mejor
// coincidencia de cada una en cualquiera de los campos. Una coincidencia con
// distancia d en un campo de peso w vale 1 - w*(1-d); una palabra sin
// coincidencia vale 1. ok es false si ninguna palabra coincidió.
func (idx *Index) score(query string, keywords []string, weights []float64, fields ...indexedField) (float64, bool) {
	var total, weightSum float64
	matched := false
	for i, kw := range keywords {
		best := 1.0
		for _, f := range fields {
			d, ok := f.distance(query, kw, idx.threshold)
			if !ok {
				continue
			}
			matched = true
			if s := 1 - f.weight*(1-d); s < best {
				best = s
			}
		}
		total += weights[i] * best
		weightSum += weights[i]
	}
	return total / weightSum, matched
}

// distance es la mejor distancia entre kw y los tokens del campo. Si la
// consulta completa aparece en el campo como frase, todas sus palabras
// coinciden con distancia 0.
func (f indexedField) distance(query, kw string, threshold float64) (float64, bool) {
	if strings.Contains(f.padded, " "+query+" ") {
		return 0, true
	}
	best := 1.0
	for _, tok := range f.tokens {
		if d := tokenDistance(kw, tok); d < best {
			best = d
			if best == 0 {
				break
			}
		}
	}
	return best, best <= threshold
}

// tokenDistance es la distancia de Levenshtein normalizada por el largo del token más largo
func tokenDistance(a, b string) float64 {
	if a == b {
		return 0
	}
	longest := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > longest {
		longest = n
	}
	if longest == 0 {
		return 0
	}
	return float64(levenshtein.ComputeDistance(a, b)) / float64(longest)
}
