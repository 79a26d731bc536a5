package model

type TrainStatus string

const (
	TrainRunning   TrainStatus = "Running"
	TrainCancelled TrainStatus = "Cancelled"
	TrainDelayed   TrainStatus = "Delayed"
)

type CompartmentType string

const (
	FirstAC  CompartmentType = "1AC"
	SecondAC CompartmentType = "2AC"
	ThirdAC  CompartmentType = "3AC"
	Sleeper  CompartmentType = "Sleeper"
	General  CompartmentType = "General"
)

type Seat struct {
	DTO
	SeatNumber    string `gorm:"not null" json:"seatNumber"` // e.g. "1A", "2F"
	IsAvailable   bool   `gorm:"default:true" json:"isAvailable"`
	CompartmentId uint   `json:"compartmentId"`
}

// Compartment carries AvailableSeats as a counter next to the seat rows; the
// allocator keeps both in step and the reconcile job heals any drift.
type Compartment struct {
	DTO
	CompartmentType CompartmentType `gorm:"not null" json:"compartmentType"`
	TotalSeats      int             `gorm:"not null" json:"totalSeats"`
	AvailableSeats  int             `gorm:"not null" json:"availableSeats"`
	Seats           []Seat          `gorm:"foreignKey:CompartmentId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"seats"`
	TrainId         uint            `json:"trainId"`
	RouteId         uint            `json:"routeId"`
}

type Train struct {
	DTO
	TrainName         string        `gorm:"not null" json:"trainName"`
	TrainNumber       string        `gorm:"uniqueIndex;not null" json:"trainNumber"`
	Source            string        `gorm:"not null" json:"source"`
	Destination       string        `gorm:"not null" json:"destination"`
	Distance          float64       `gorm:"not null" json:"distance"` // km, full run
	EstimatedDuration int           `gorm:"not null" json:"estimatedDuration"` // minutes
	Compartments      []Compartment `gorm:"foreignKey:TrainId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"compartments"`
	Quotas            string        `gorm:"default:'General'" json:"quotas"`
	Status            TrainStatus   `gorm:"default:'Running'" json:"status"`
	IsScheduled       bool          `gorm:"default:false" json:"isScheduled"`
	RouteId           uint          `gorm:"not null" json:"routeId"`
	Route             Route         `gorm:"foreignKey:RouteId" json:"route"`
}

type CompartmentInput struct {
	CompartmentType CompartmentType `json:"compartmentType" validate:"required,oneof=1AC 2AC 3AC Sleeper General"`
	TotalSeats      int             `json:"totalSeats" validate:"required,min=1"`
}

type CreateTrainInput struct {
	TrainName         string             `json:"trainName" validate:"required"`
	TrainNumber       string             `json:"trainNumber" validate:"required"`
	Source            string             `json:"source" validate:"required"`
	Destination       string             `json:"destination" validate:"required"`
	Distance          float64            `json:"distance" validate:"required,gt=0"`
	EstimatedDuration int                `json:"estimatedDuration" validate:"required,gt=0"`
	Compartments      []CompartmentInput `json:"compartments" validate:"required,min=1,dive"`
	Quotas            string             `json:"quotas"`
	Status            TrainStatus        `json:"status" validate:"omitempty,oneof=Running Cancelled Delayed"`
	RouteId           uint               `json:"route" validate:"required"`
}

type UpdateTrainInput struct {
	TrainName   string `json:"trainName" validate:"required"`
	TrainNumber string `json:"trainNumber" validate:"required"`
}

// Compartment finds the named compartment on the train, nil when absent.
func (t *Train) Compartment(ct CompartmentType) *Compartment {
	for i := range t.Compartments {
		if t.Compartments[i].CompartmentType == ct {
			return &t.Compartments[i]
		}
	}
	return nil
}
