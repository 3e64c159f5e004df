package faq

import "github.com/Maxito7/marea_backend/internal/domain"

// DefaultCorpus devuelve una copia del dataset de preguntas frecuentes
func DefaultCorpus() []domain.FaqEntry {
	out := make([]domain.FaqEntry, len(defaultCorpus))
	for i, e := range defaultCorpus {
		e.Tags = append([]string(nil), e.Tags...)
		out[i] = e
	}
	return out
}

var defaultCorpus = []domain.FaqEntry{
	{
		Question: "¿Cómo hago una reserva?",
		Answer: "Puedes reservar tu mesa desde la sección Reservas del sitio, eligiendo fecha, " +
			"hora y número de personas. También puedes llamarnos al +56 65 2 681 234.",
		Tags:   []string{"reserva", "reservar", "mesa", "reservas"},
		Domain: domain.FaqDomainRestaurant,
	},
	{
		Question: "¿Cuál es el horario de atención?",
		Answer: "Atendemos de martes a domingo, de 12:30 a 16:00 y de 19:30 a 23:00. " +
			"Los lunes permanecemos cerrados.",
		Tags:   []string{"horario", "horarios", "abierto", "atención", "cerrado"},
		Domain: domain.FaqDomainRestaurant,
	},
	{
		Question: "¿Cuál es la ubicación del restaurante?",
		Answer: "Estamos en la costanera de Quemchi, frente al muelle. " +
			"Hay estacionamiento gratuito a media cuadra.",
		Tags:   []string{"ubicación", "dirección", "llegar", "estacionamiento", "muelle"},
		Domain: domain.FaqDomainRestaurant,
	},
	{
		Question: "¿Qué platos tiene el menú?",
		Answer: "La carta cambia según la pesca del día: curanto en olla, mariscos frescos, " +
			"pescado a la plancha y opciones vegetarianas. Puedes ver el menú completo en la sección Carta.",
		Tags:   []string{"menú", "carta", "platos", "comida", "vegetariano", "mariscos"},
		Domain: domain.FaqDomainRestaurant,
	},
	{
		Question: "¿Organizan eventos privados?",
		Answer: "Sí, recibimos cumpleaños, matrimonios y eventos de empresa de hasta 60 personas. " +
			"Escríbenos desde el formulario de contacto para cotizar.",
		Tags:   []string{"eventos", "evento", "cumpleaños", "celebración", "privado"},
		Domain: domain.FaqDomainRestaurant,
	},
	{
		Question: "¿Qué es la Cooperativa Costa Viva?",
		Answer: "Costa Viva es una cooperativa de pescadores artesanales y recolectoras de orilla de Chiloé " +
			"que organiza turismo comunitario y abastece al restaurante con productos locales.",
		Tags:   []string{"cooperativa", "costa viva", "pescadores", "artesanal", "chiloé"},
		Domain: domain.FaqDomainCooperative,
	},
	{
		Question: "¿Cómo puedo ser socio o voluntario?",
		Answer: "Puedes postular como socio o inscribirte como voluntario en la sección Cooperativa del sitio. " +
			"Las jornadas de voluntariado son el primer sábado de cada mes.",
		Tags:   []string{"socio", "socios", "voluntario", "voluntariado", "membresía"},
		Domain: domain.FaqDomainCooperative,
	},
	{
		Question: "¿Las actividades dependen de la marea?",
		Answer: "Sí, las salidas en bote y la recolección de orilla se programan según la tabla de mareas. " +
			"Revisa el calendario de actividades o consúltanos antes de tu visita.",
		Tags:   []string{"marea", "mareas", "tours", "excursión", "actividades"},
		Domain: domain.FaqDomainCooperative,
	},
}

var quickReplies = []string{
	"¿Cómo hago una reserva?",
	"¿Cuál es el horario de atención?",
	"¿Qué platos tiene el menú?",
	"¿Qué es la Cooperativa Costa Viva?",
	"¿Las actividades dependen de la marea?",
}

// QuickReplies devuelve las sugerencias que el chat muestra como botones
func QuickReplies() []string {
	return append([]string(nil), quickReplies...)
}
