package cart

import "time"

// seedCarts is the initial dataset: 10 carts spread over the three seeded
// users, dated relative to process start.
func seedCarts(now time.Time) []Cart {
	return []Cart{
		{ID: 1, UserID: "user-001", Date: now.AddDate(0, 0, -5), Products: []Item{{ProductID: 1, Quantity: 1}, {ProductID: 3, Quantity: 1}}},
		{ID: 2, UserID: "user-001", Date: now.AddDate(0, 0, -3), Products: []Item{{ProductID: 6, Quantity: 2}, {ProductID: 7, Quantity: 1}}},
		{ID: 3, UserID: "user-002", Date: now.AddDate(0, 0, -7), Products: []Item{{ProductID: 11, Quantity: 1}, {ProductID: 12, Quantity: 1}}},
		{ID: 4, UserID: "user-002", Date: now.AddDate(0, 0, -2), Products: []Item{{ProductID: 16, Quantity: 1}, {ProductID: 17, Quantity: 1}}},
		{ID: 5, UserID: "user-003", Date: now.AddDate(0, 0, -10), Products: []Item{{ProductID: 2, Quantity: 1}, {ProductID: 5, Quantity: 1}}},
		{ID: 6, UserID: "user-003", Date: now.AddDate(0, 0, -1), Products: []Item{{ProductID: 19, Quantity: 1}, {ProductID: 20, Quantity: 2}}},
		{ID: 7, UserID: "user-001", Date: now.AddDate(0, 0, -15), Products: []Item{{ProductID: 4, Quantity: 1}, {ProductID: 15, Quantity: 2}}},
		{ID: 8, UserID: "user-002", Date: now.AddDate(0, 0, -20), Products: []Item{{ProductID: 8, Quantity: 1}, {ProductID: 9, Quantity: 1}}},
		{ID: 9, UserID: "user-003", Date: now.AddDate(0, 0, -12), Products: []Item{{ProductID: 13, Quantity: 1}, {ProductID: 14, Quantity: 1}}},
		{ID: 10, UserID: "user-001", Date: now, Products: []Item{{ProductID: 10, Quantity: 1}, {ProductID: 18, Quantity: 1}}},
	}
}
