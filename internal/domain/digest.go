package domain

import "time"

// FallbackDigest resume los mensajes que el chat no supo responder en un período
type FallbackDigest struct {
	Since time.Time
	Until time.Time
	Total int
	Items []FallbackDigestItem
}

// FallbackDigestItem agrupa mensajes iguales después de normalizarlos
type FallbackDigestItem struct {
	Message  string
	Reason   FallbackReason
	Count    int
	LastSeen time.Time
}
