// Package domain contains the core data types for the Transporte API.
// This package has zero third-party dependencies and is imported by every
// other internal package (repo, service, handler).
package domain

// Trip represents a single transport job ("viagem"): who drove, where,
// when, what it cost and what it earned. Trips are append-only — they are
// never updated or deleted once recorded.
//
// Date is kept as the "YYYY-MM-DD" string the caller sent. The format is
// not enforced at creation; the monthly report silently skips records
// whose date does not parse, so malformed dates are representable.
type Trip struct {
	ID             int64   `json:"id"`
	OwnerID        int64   `json:"usuarioId,omitempty"` // 0 when the server runs in open mode
	Driver         string  `json:"motorista"`
	Plate          string  `json:"placa"`
	Origin         string  `json:"origem"`
	Destination    string  `json:"destino"`
	Date           string  `json:"data"`
	FuelCost       float64 `json:"combustivel"`
	TollCost       float64 `json:"pedagio"`
	FreightRevenue float64 `json:"frete"`
}
