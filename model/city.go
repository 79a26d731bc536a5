package model

// City backs the station/city autocomplete on the search form.
type City struct {
	DTO
	Name  string `gorm:"index;not null" json:"name"`
	Code  string `gorm:"size:10" json:"code"`
	State string `json:"state"`
}
