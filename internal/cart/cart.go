package cart

import "time"

// Item is one product line inside a cart.
type Item struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// Cart is a shopping cart row. ID is assigned by the store on Add.
type Cart struct {
	ID       int       `json:"id"`
	UserID   string    `json:"userId"`
	Date     time.Time `json:"date"`
	Products []Item    `json:"products"`
}
