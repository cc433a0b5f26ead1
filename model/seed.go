package model

// DefaultProducts is the initial menu loaded into an empty catalog on
// first run. Prices and costs are in rupiah.
func DefaultProducts() []*Product {
	return []*Product{
		{ID: 1, Name: "Dimsum Ori Mentai (Small 3pcs)", Price: 18000, Cost: 10000, Icon: "fa-drumstick-bite", Category: CategoryPaket, Description: "Dimsum 3 + Saus Mentai + Topping + Packaging", Stock: IntPtr(100)},
		{ID: 2, Name: "Dimsum Ori Mentai (Medium 6pcs)", Price: 28000, Cost: 15000, Icon: "fa-drumstick-bite", Category: CategoryPaket, Description: "Dimsum 6 + Saus Mentai + Topping + Packaging", Stock: IntPtr(100)},
		{ID: 3, Name: "Dimsum Ori Mentai (Large 16pcs)", Price: 75000, Cost: 40000, Icon: "fa-drumstick-bite", Category: CategoryPaket, Description: "Dimsum 16 + Saus Mentai + Topping + Packaging", Stock: IntPtr(100)},
		{ID: 4, Name: "Dimmoza Mentai (Small 3pcs)", Price: 21000, Cost: 11500, Icon: "fa-cheese", Category: CategoryPaket, Description: "DSM + Mozzarella", Stock: IntPtr(100)},
		{ID: 5, Name: "Dimsum Mentai Cheesy (Small 3pcs)", Price: 21000, Cost: 11500, Icon: "fa-cheese", Category: CategoryPaket, Description: "DSM + Mozzarella", Stock: IntPtr(100)},
		{ID: 6, Name: "Dimsum Mentai Double Cheesy (Small 3pcs)", Price: 24000, Cost: 13000, Icon: "fa-cheese", Category: CategoryPaket, Description: "DSM + Double Mozzarella", Stock: IntPtr(100)},
		{ID: 7, Name: "Dimsum Mentai Tobiko Cheesy (Small 3pcs)", Price: 23000, Cost: 12500, Icon: "fa-fish", Category: CategoryPaket, Description: "DSM + Mozza + Tobiko", Stock: IntPtr(100)},
		{ID: 8, Name: "Gyoza Mentai (Small 5pcs)", Price: 18000, Cost: 10000, Icon: "fa-dumpling", Category: CategoryPaket, Description: "Gyoza 5 + Saus Mentai + Topping + Packaging", Stock: IntPtr(100)},
		{ID: 9, Name: "Gyoza Mentai (Medium 8pcs)", Price: 24000, Cost: 13000, Icon: "fa-dumpling", Category: CategoryPaket, Description: "Gyoza 8 + Saus Mentai + Topping + Packaging", Stock: IntPtr(100)},
		{ID: 10, Name: "Dimsum Ori (Satuan)", Price: 3000, Cost: 1500, Icon: "fa-utensils", Category: CategorySatuan, Stock: IntPtr(1000)},
		{ID: 11, Name: "Dimmoza (Satuan)", Price: 4000, Cost: 2000, Icon: "fa-cheese", Category: CategorySatuan, Stock: IntPtr(1000)},
		{ID: 12, Name: "Gyoza (Satuan)", Price: 2000, Cost: 1000, Icon: "fa-dumpling", Category: CategorySatuan, Stock: IntPtr(1000)},
		{ID: 13, Name: "Mozzarella", Price: 1000, Cost: 500, Icon: "fa-cheese", Category: CategoryTopping, Stock: IntPtr(1000)},
		{ID: 14, Name: "Tobiko", Price: 3000, Cost: 1500, Icon: "fa-fish", Category: CategoryTopping, Stock: IntPtr(500)},
		{ID: 15, Name: "Creamy Bolognese 50ml", Price: 7000, Cost: 3500, Icon: "fa-wine-bottle", Category: CategorySaus, Stock: IntPtr(200)},
		{ID: 16, Name: "Creamy Bolognese 80ml", Price: 10000, Cost: 5000, Icon: "fa-wine-bottle", Category: CategorySaus, Stock: IntPtr(200)},
	}
}
