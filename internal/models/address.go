package models

// City il kaydını temsil eder
type City struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// District ilçe kaydını temsil eder
type District struct {
	ID           int    `json:"id"`
	CityID       int    `json:"cityId"`
	DistrictName string `json:"districtName"`
	City         *City  `json:"city,omitempty"`
}

// Neighborhood mahalle kaydını temsil eder.
// JSON alan adlarındaki "neigborhood" yazımı backend sözleşmesinden gelir,
// düzeltilemez.
type Neighborhood struct {
	ID               int       `json:"id"`
	DistrictID       int       `json:"districtId"`
	NeighborhoodName string    `json:"neigborhoodName"`
	District         *District `json:"district,omitempty"`
}
