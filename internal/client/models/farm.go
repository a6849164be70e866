// Package models contains the wire representations of the farmfinder API.
// JSON tags follow the server's serialization exactly.
package models

type Farm struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type ShopType struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// OpeningHours describes one weekday interval. Open and Close are encoded
// as HHMM integers (e.g. 930 for 09:30), Weekday counts from 0 = Monday.
type OpeningHours struct {
	ID      int `json:"id"`
	Weekday int `json:"weekday"`
	Open    int `json:"open"`
	Close   int `json:"close"`
}

// FullFarm is the detail view of a farm, including the coordinates the map
// widget renders.
type FullFarm struct {
	ID           int            `json:"id"`
	Name         string         `json:"name"`
	Lat          float64        `json:"lat"`
	Lon          float64        `json:"lon"`
	ShopTypes    []ShopType     `json:"shopTypes"`
	OpeningHours []OpeningHours `json:"openingHours"`
}

type NewFarm struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}
