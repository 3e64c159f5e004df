package faq

import "strings"

// spanishStopwords ya están normalizadas (sin tildes)
var spanishStopwords = toSet([]string{
	"a", "al", "algo", "alguien", "algun", "alguna", "algunas", "alguno", "algunos",
	"ante", "antes", "aqui", "asi", "aun", "bien", "buen", "buena", "buenas", "buenos",
	"cada", "como", "con", "contra", "cual", "cuales", "cuando", "cuanta", "cuantas",
	"cuanto", "cuantos", "de", "del", "desde", "donde", "dos", "e", "el", "ella",
	"ellas", "ello", "ellos", "en", "entonces", "entre", "era", "eran", "es", "esa",
	"esas", "ese", "eso", "esos", "esta", "estan", "estar", "estas", "este", "esto",
	"estos", "estoy", "favor", "fue", "fueron", "gracias", "ha", "hace", "hacen",
	"hacer", "hago", "han", "hasta", "hay", "hola", "la", "las", "le", "les", "lo",
	"los", "mas", "me", "mi", "mis", "mucho", "muy", "nada", "necesito", "ni", "no",
	"nos", "nosotros", "nuestra", "nuestro", "o", "os", "otra", "otro", "para",
	"pero", "poco", "por", "porque", "pueda", "puede", "pueden", "puedo", "pues",
	"que", "queria", "quien", "quiero", "quisiera", "saber", "se", "sea", "ser",
	"seria", "si", "sin", "sobre", "son", "su", "sus", "tambien", "tan", "tanto",
	"te", "tengo", "tiene", "tienen", "todo", "todos", "tu", "tus", "u", "un", "una",
	"unas", "uno", "unos", "usted", "ustedes", "va", "vamos", "y", "ya", "yo",
})

// DefaultAllowedKeywords son los términos que delimitan el dominio del chat:
// operación del restaurante y la cooperativa con sus localidades.
var DefaultAllowedKeywords = []string{
	// restaurante
	"restaurante", "reserva", "reservas", "reservar", "reservo", "mesa", "mesas",
	"menu", "carta", "plato", "platos", "comida", "almuerzo", "cena",
	"horario", "horarios", "hora", "abierto", "abren", "cierran", "atencion",
	"ubicacion", "direccion", "llegar", "estacionamiento",
	"marea", "mareas", "evento", "eventos", "cumpleanos",
	"precio", "precios", "pago", "vegetariano", "mariscos", "pescado",
	// cooperativa
	"cooperativa", "costa", "socio", "socios", "membresia",
	"voluntario", "voluntarios", "voluntariado", "pescadores",
	"turismo", "tour", "tours", "actividad", "actividades", "excursion",
	"chiloe", "quemchi", "ancud", "castro", "dalcahue",
}

// ExtractKeywords normaliza el texto y devuelve sus palabras clave: sin
// stopwords, sin tokens numéricos y sin duplicados, en orden de aparición.
func ExtractKeywords(text string) []string {
	tokens := strings.Fields(Normalize(text))
	seen := make(map[string]struct{}, len(tokens))
	keywords := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, stop := spanishStopwords[tok]; stop || isNumeric(tok) {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		keywords = append(keywords, tok)
	}
	return keywords
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
