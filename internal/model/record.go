package model

// Record is a single salon transaction row. Every known column has an
// explicit field; unrecognized columns land in Extra. A zero value means the
// column was absent or blank in the source file.
type Record struct {
	ClientName         string `json:"clientName,omitempty"`
	AcquisitionChannel string `json:"acquisitionChannel,omitempty"`
	BookingDate        string `json:"bookingDate,omitempty"`
	TransactionDate    string `json:"transactionDate,omitempty"`
	Service            string `json:"service,omitempty"`
	ServiceCategory    string `json:"serviceCategory,omitempty"`
	// Price is coerced to 0 when the source value is not numeric; bad prices
	// contribute nothing to revenue sums.
	Price              float64 `json:"price"`
	PaymentMethod      string  `json:"paymentMethod,omitempty"`
	ConfirmationStatus string  `json:"confirmationStatus,omitempty"`
	OfferApplicability string  `json:"offerApplicability,omitempty"`
	LoyaltyStage       string  `json:"loyaltyStage,omitempty"`
	LoyaltyPoints      float64 `json:"loyaltyPoints,omitempty"`
	Employee           string  `json:"employee,omitempty"`
	// StartTime and EndTime stay raw ("9:00 AM", "14:30"); the occupancy
	// calculator normalizes them lazily and skips rows it cannot read.
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`

	Extra map[string]interface{} `json:"extra,omitempty"`
}

// SetExtra stores an unrecognized column value, allocating the map lazily.
func (r *Record) SetExtra(key string, value interface{}) {
	if r.Extra == nil {
		r.Extra = make(map[string]interface{})
	}
	r.Extra[key] = value
}
