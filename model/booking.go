package model

import (
	"time"

	"horizon_booking/utils"
)

type Passenger struct {
	DTO
	Name       string `gorm:"not null" json:"name"`
	Age        int    `gorm:"not null" json:"age"`
	Gender     string `gorm:"not null" json:"gender"` // Male, Female, Other
	SeatNumber string `gorm:"not null" json:"seatNumber"`
	BookingId  uint   `json:"bookingId"`
}

type Booking struct {
	DTO
	PNR              int64            `gorm:"column:pnr;uniqueIndex;not null" json:"pnr"`
	UserId           uint             `gorm:"not null;index" json:"userId"`
	User             User             `gorm:"foreignKey:UserId" json:"-"`
	TrainId          uint             `gorm:"not null" json:"trainId"`
	Train            Train            `gorm:"foreignKey:TrainId" json:"train"`
	Source           string           `gorm:"not null" json:"source"`      // requested boarding point
	Destination      string           `gorm:"not null" json:"destination"` // requested destination
	PassengerDetails []Passenger      `gorm:"foreignKey:BookingId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"passengerDetails"`
	TotalSeats       int              `gorm:"not null" json:"totalSeats"`
	SeatNumbers      []string         `gorm:"type:json;serializer:json" json:"seatNumbers"`
	JourneyDate      utils.CustomDate `gorm:"type:date;not null" json:"journeyDate"`
	BookingDate      time.Time        `gorm:"not null" json:"bookingDate"`
	TotalFare        float64          `gorm:"not null" json:"totalFare"`
	CompartmentType  CompartmentType  `json:"compartmentType"`
}

type PassengerInput struct {
	Name   string `json:"name" validate:"required"`
	Age    int    `json:"age" validate:"required,gt=0"`
	Gender string `json:"gender" validate:"required,oneof=Male Female Other"`
}

type PriceBreakdown struct {
	Base  float64 `json:"base"`
	GST   float64 `json:"gst"`
	Total float64 `json:"total"`
}

// BookingIntent is the blob round-tripped through the payment provider's
// metadata and delivered back verbatim by the webhook.
type BookingIntent struct {
	UserId           uint             `json:"userId" validate:"required"`
	TrainNumber      string           `json:"trainNumber" validate:"required"`
	CompartmentType  CompartmentType  `json:"compartmentType" validate:"required,oneof=1AC 2AC 3AC Sleeper General"`
	PassengerDetails []PassengerInput `json:"passengerDetails" validate:"required,min=1,dive"`
	JourneyDate      string           `json:"journeyDate" validate:"required"`
	Price            PriceBreakdown   `json:"price"`
	FromCity         string           `json:"fromCity" validate:"required"`
	ToCity           string           `json:"toCity" validate:"required"`
}

type BookTicketsInput struct {
	SuccessData *BookingIntent `json:"successData" validate:"required"`
}

type CheckUserBookingInput struct {
	UserId      uint   `json:"userId" validate:"required"`
	TrainNumber string `json:"trainNumber" validate:"required"`
	JourneyDate string `json:"journeyDate" validate:"required"`
}
