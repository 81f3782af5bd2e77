package model

import "time"

// InventoryRecord is the full inventory view of the richer catalog schema,
// joined with category and supplier names.
type InventoryRecord struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Quantity       int        `json:"quantity"`
	SalePrice      float64    `json:"sale_price"`
	Category       *string    `json:"category"`
	Supplier       *string    `json:"supplier"`
	ExpirationDate *time.Time `json:"expiration_date"`
}

// GroupCount is an aggregate bucket (per category or per supplier).
type GroupCount struct {
	Name          string `json:"name"`
	TotalProducts int    `json:"total_products"`
	TotalUnits    int    `json:"total_units"`
}

// Movement is one entry of the inventory movement history.
type Movement struct {
	ID          int64     `json:"id"`
	Product     string    `json:"product"`
	Type        string    `json:"type"`
	Quantity    int       `json:"quantity"`
	OccurredAt  time.Time `json:"occurred_at"`
	Description string    `json:"description"`
}
