package catalog

// seedProducts is the initial catalog: 20 products across 4 categories.
// The id allocator starts above the highest id here.
func seedProducts() []Product {
	return []Product{
		{ID: 1, Title: "Laptop", Price: 799.99, Description: "High-performance laptop with 16GB RAM", Image: "https://example.com/laptop.jpg", Category: "electronics"},
		{ID: 2, Title: "Smartphone", Price: 699.99, Description: "Latest model smartphone with 128GB storage", Image: "https://example.com/phone.jpg", Category: "electronics"},
		{ID: 3, Title: "Wireless Headphones", Price: 149.99, Description: "Noise-cancelling wireless headphones", Image: "https://example.com/headphones.jpg", Category: "electronics"},
		{ID: 4, Title: "Tablet", Price: 449.99, Description: "10-inch tablet with stylus support", Image: "https://example.com/tablet.jpg", Category: "electronics"},
		{ID: 5, Title: "Smart Watch", Price: 299.99, Description: "Fitness tracking smart watch", Image: "https://example.com/watch.jpg", Category: "electronics"},

		{ID: 6, Title: "T-Shirt", Price: 19.99, Description: "Cotton t-shirt in various colors", Image: "https://example.com/tshirt.jpg", Category: "clothing"},
		{ID: 7, Title: "Jeans", Price: 49.99, Description: "Classic fit denim jeans", Image: "https://example.com/jeans.jpg", Category: "clothing"},
		{ID: 8, Title: "Jacket", Price: 89.99, Description: "All-weather jacket with hood", Image: "https://example.com/jacket.jpg", Category: "clothing"},
		{ID: 9, Title: "Sneakers", Price: 79.99, Description: "Comfortable running sneakers", Image: "https://example.com/sneakers.jpg", Category: "clothing"},
		{ID: 10, Title: "Hat", Price: 24.99, Description: "Adjustable baseball cap", Image: "https://example.com/hat.jpg", Category: "clothing"},

		{ID: 11, Title: "Coffee Maker", Price: 89.99, Description: "Programmable coffee maker with timer", Image: "https://example.com/coffee.jpg", Category: "home"},
		{ID: 12, Title: "Blender", Price: 59.99, Description: "High-speed blender for smoothies", Image: "https://example.com/blender.jpg", Category: "home"},
		{ID: 13, Title: "Vacuum Cleaner", Price: 199.99, Description: "Cordless vacuum with HEPA filter", Image: "https://example.com/vacuum.jpg", Category: "home"},
		{ID: 14, Title: "Garden Tools Set", Price: 49.99, Description: "Complete set of gardening tools", Image: "https://example.com/tools.jpg", Category: "home"},
		{ID: 15, Title: "Throw Pillow", Price: 29.99, Description: "Decorative throw pillow", Image: "https://example.com/pillow.jpg", Category: "home"},

		{ID: 16, Title: "Yoga Mat", Price: 34.99, Description: "Non-slip yoga mat with carrying strap", Image: "https://example.com/yoga.jpg", Category: "sports"},
		{ID: 17, Title: "Dumbbell Set", Price: 99.99, Description: "Adjustable dumbbell set 5-50 lbs", Image: "https://example.com/dumbbells.jpg", Category: "sports"},
		{ID: 18, Title: "Camping Tent", Price: 149.99, Description: "4-person waterproof camping tent", Image: "https://example.com/tent.jpg", Category: "sports"},
		{ID: 19, Title: "Bicycle", Price: 399.99, Description: "Mountain bike with 21 speeds", Image: "https://example.com/bike.jpg", Category: "sports"},
		{ID: 20, Title: "Soccer Ball", Price: 24.99, Description: "Official size soccer ball", Image: "https://example.com/soccer.jpg", Category: "sports"},
	}
}
