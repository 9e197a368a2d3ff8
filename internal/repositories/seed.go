package repositories

import "carhub/internal/models"

// DefaultCatalog returns the built-in seed catalog used to initialize an
// empty store on first access. All cars start unsold.
func DefaultCatalog() []models.Car {
	return []models.Car{
		{
			ID:          "1",
			Make:        "Toyota",
			Model:       "Camry",
			Year:        2021,
			Price:       25000,
			Description: "Reliable sedan with excellent fuel economy and smooth ride. Includes advanced safety features and infotainment system.",
			ImageURL:    "https://images.unsplash.com/photo-1553440569-bcc63803a83d?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			Features:    []string{"Bluetooth", "Backup Camera", "Lane Assist", "Cruise Control"},
		},
		{
			ID:          "2",
			Make:        "Honda",
			Model:       "Civic",
			Year:        2022,
			Price:       22000,
			Description: "Compact car with sporty handling and modern styling. Features include Honda Sensing safety suite and Apple CarPlay/Android Auto.",
			ImageURL:    "https://images.unsplash.com/photo-1533106418989-88406c7cc8ca?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			Features:    []string{"Apple CarPlay", "Android Auto", "Sunroof", "Heated Seats"},
		},
		{
			ID:          "3",
			Make:        "Ford",
			Model:       "Mustang",
			Year:        2020,
			Price:       35000,
			Description: "Iconic American muscle car with powerful engine options. Features SYNC infotainment and performance driving modes.",
			ImageURL:    "https://images.unsplash.com/photo-1584345604476-8ec5e12e42dd?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			Features:    []string{"V8 Engine", "Leather Seats", "Premium Audio", "Rear-Wheel Drive"},
		},
		{
			ID:          "4",
			Make:        "Jeep",
			Model:       "Wrangler",
			Year:        2021,
			Price:       40000,
			Description: "Off-road capable SUV with removable top and doors. Includes 4x4 capability and modern tech features.",
			ImageURL:    "https://images.unsplash.com/photo-1561893836-adae6b766f82?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			Features:    []string{"4x4", "Removable Top", "Off-Road Package", "Tow Package"},
		},
		{
			ID:          "5",
			Make:        "Tesla",
			Model:       "Model 3",
			Year:        2022,
			Price:       45000,
			Description: "All-electric sedan with impressive range and acceleration. Features include Autopilot and large touchscreen interface.",
			ImageURL:    "https://images.unsplash.com/photo-1561580125-028ee3bd62eb?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			Features:    []string{"Electric", "Autopilot", "Minimalist Interior", "Fast Charging"},
		},
		{
			ID:          "6",
			Make:        "BMW",
			Model:       "3 Series",
			Year:        2021,
			Price:       42000,
			Description: "Luxury sedan with dynamic handling and premium features. Includes iDrive infotainment and driver assistance features.",
			ImageURL:    "https://images.unsplash.com/photo-1520050206274-a1ae44613e6d?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			Features:    []string{"Leather Interior", "Navigation", "Sport Mode", "Premium Sound"},
		},
	}
}
