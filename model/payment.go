package model

// CreateCheckoutInput mirrors what the booking page submits before the user is
// redirected to the payment provider.
type CreateCheckoutInput struct {
	Base        float64        `json:"base" validate:"required,gt=0"`
	GST         float64        `json:"gst" validate:"required,gte=0"`
	Total       float64        `json:"total" validate:"required,gt=0"`
	BookingData *BookingIntent `json:"bookingData" validate:"required"`
}
