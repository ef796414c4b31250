package domain

import "time"

// CartItem is one cart event from the cart index.
type CartItem struct {
	ID           string    `json:"id"`
	CustomerNo   string    `json:"customerNo"`
	UserCode     string    `json:"userCode"`
	MaterialNo   string    `json:"materialNo"`
	Quantity     int       `json:"quantity"`
	OrderNo      string    `json:"orderNo"`
	DepotCode    string    `json:"depotCode"`
	LastActionAt time.Time `json:"lastActionAt"`
	Province     string    `json:"province"`
	District     string    `json:"district"`
}
