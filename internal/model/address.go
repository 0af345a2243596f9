package model

// Coordinates is a longitude/latitude pair obtained from the device-location
// capability. The zero value doubles as the "not yet captured" sentinel: a
// fix of exactly (0,0) counts as absent. Known limitation inherited from the
// source system — a genuine equator/prime-meridian fix is indistinguishable
// from no fix.
type Coordinates struct {
	Longitude float64 `json:"lng"`
	Latitude  float64 `json:"lat"`
}

// Captured reports whether a device fix has been recorded.
func (c Coordinates) Captured() bool {
	return c.Longitude != 0 || c.Latitude != 0
}

// Address holds structured postal fields plus the geographic fix required
// before a registration can complete.
type Address struct {
	Street      string      `json:"street"`
	City        string      `json:"city"`
	State       string      `json:"state"`
	Pincode     string      `json:"pincode"`
	Coordinates Coordinates `json:"coordinates"`
}
