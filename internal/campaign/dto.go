package campaign

import "time"

type CreateCampaignRequest struct {
	Name       string    `json:"name" validate:"required,max=200"`
	TenantName string    `json:"tenant_name" validate:"required,max=200"`
	StartDate  time.Time `json:"start_date" validate:"required"`
	EndDate    time.Time `json:"end_date" validate:"required"`
}

type AddBookingRequest struct {
	ScreenID  string    `json:"screen_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gte=1"`
	StartDate time.Time `json:"start_date,omitzero"`
	EndDate   time.Time `json:"end_date,omitzero"`
	Segments  []string  `json:"segments" validate:"required,min=1"`
}
