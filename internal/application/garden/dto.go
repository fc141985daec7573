package garden

import (
	"github.com/greenflow-inc/greenflow/internal/domain/garden"
)

// DashboardDTO is the authenticated landing view: who you are, what you grow,
// and how far along it is.
type DashboardDTO struct {
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Subscribed bool              `json:"subscribed"`
	Plants     []garden.CropView `json:"plants"`
	Stats      DashboardStats    `json:"stats"`
}

// DashboardStats summarizes the garden.
type DashboardStats struct {
	TotalPlants int `json:"total_plants"`
	// Growing counts crops past the halfway mark but not yet ready.
	Growing int `json:"growing"`
	Ready   int `json:"ready"`
}
