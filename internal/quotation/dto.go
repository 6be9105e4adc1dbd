package quotation

type CreateQuotationRequest struct {
	ClientName string              `json:"client_name" validate:"required,max=200"`
	Agency     string              `json:"agency,omitempty" validate:"max=200"`
	Items      []CreateLineItemReq `json:"items" validate:"dive"`
}

// CreateLineItemReq adds a line item to a section. Empty category,
// duration or qty fall back to the portal defaults.
type CreateLineItemReq struct {
	Section  string `json:"section" validate:"required,max=100"`
	Category string `json:"category,omitempty"`
	Duration string `json:"duration,omitempty"`
	Qty      int    `json:"qty,omitempty" validate:"gte=0"`
}

type UpdateLineItemReq struct {
	Category *string `json:"category,omitempty"`
	Duration *string `json:"duration,omitempty"`
	Qty      *int    `json:"qty,omitempty" validate:"omitempty,gte=0"`
}

type SetManualDiscountsReq struct {
	PackageAmount   *float64 `json:"package_amount,omitempty" validate:"omitempty,gte=0"`
	OtherPercentage *float64 `json:"other_percentage,omitempty" validate:"omitempty,gte=0,lte=100"`
}

type ListQuotationsRequest struct {
	ClientName *string          `json:"client_name,omitempty"`
	Status     *QuotationStatus `json:"status,omitempty"`
}
