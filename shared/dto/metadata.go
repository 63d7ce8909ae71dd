package dto

import (
	"time"

	"tm30/shared/model"
	"tm30/shared/timezone"
)

type Metadata struct {
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = timezone.Format(model.CreatedAt, time.RFC3339)
	m.UpdatedAt = timezone.Format(model.UpdatedAt, time.RFC3339)
}
