package entity

import (
	"time"

	"github.com/google/uuid"
)

// EnrichedRecord represents one enriched output row for data transfer between layers.
type EnrichedRecord struct {
	ID               uuid.UUID `json:"id"`
	UploadID         uuid.UUID `json:"upload_id"`
	OwnerID          string    `json:"owner_id"`
	CompanyName      string    `json:"company_name"`
	Website          string    `json:"website,omitempty"`
	Country          string    `json:"country,omitempty"`
	City             string    `json:"city,omitempty"`
	Size             string    `json:"size,omitempty"`
	Industry         string    `json:"industry,omitempty"`
	Revenue          string    `json:"revenue,omitempty"`
	EnrichmentStatus string    `json:"enrichment_status"`
	CreatedAt        time.Time `json:"created_at"`
}
