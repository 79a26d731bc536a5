package model

// Schedule holds operating weekdays and wall-clock departure/arrival times
// (HH:MM, no date or timezone). At most one schedule per train in practice.
type Schedule struct {
	DTO
	TrainId       uint     `gorm:"not null" json:"trainId"`
	Train         Train    `gorm:"foreignKey:TrainId" json:"-"`
	OperatingDays []string `gorm:"type:json;serializer:json" json:"operatingDays"`
	DepartureTime string   `gorm:"size:5;not null" json:"departureTime"` // HH:MM
	ArrivalTime   string   `gorm:"size:5;not null" json:"arrivalTime"`   // HH:MM
}

// RunsOn reports whether the schedule covers the given weekday name
// ("Monday" .. "Sunday").
func (s Schedule) RunsOn(weekday string) bool {
	for _, d := range s.OperatingDays {
		if d == weekday {
			return true
		}
	}
	return false
}

type ScheduleTrainInput struct {
	OperatingDays []string `json:"operatingDays" validate:"required,min=1,dive,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	DepartureTime string   `json:"departureTime" validate:"required,clocktime"`
	ArrivalTime   string   `json:"arrivalTime" validate:"required,clocktime"`
}
