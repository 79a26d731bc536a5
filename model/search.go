package model

// TrainSearchResult is one qualifying train for a requested segment. The
// departure/arrival strings are clock-adjusted to the requested boarding point.
type TrainSearchResult struct {
	TrainName                string        `json:"trainName"`
	TrainNumber              string        `json:"trainNumber"`
	Source                   string        `json:"source"`      // the train's own origin
	Destination              string        `json:"destination"` // the train's own terminus
	DepartureTime            string        `json:"departureTime"`
	AdjustedDepartureTime    string        `json:"adjustedDepartureTime"`
	ArrivalTimeAtDestination string        `json:"arrivalTimeAtDestination"`
	OperatingDays            []string      `json:"operatingDays"`
	Compartments             []Compartment `json:"compartments"`
	Quotas                   string        `json:"quotas"`
	Status                   TrainStatus   `json:"status"`
	EstimatedTime            float64       `json:"estimatedTime"` // hours across the requested segment
	TotalDistance            float64       `json:"totalDistance"` // km across the requested segment
}
