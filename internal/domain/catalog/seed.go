package catalog

func mustSpecies(id, name, icon string, days int, low, high float64, tip string) *PlantSpecies {
	sp, err := NewPlantSpecies(id, name, icon, days, PHRange{Low: low, High: high}, tip)
	if err != nil {
		panic(err)
	}
	return sp
}

func mustPackage(id, name string, price, capacity int, area, desc string) *Package {
	p, err := NewPackage(id, name, price, capacity, area, desc)
	if err != nil {
		panic(err)
	}
	return p
}

// DefaultStore returns the production seed catalog.
func DefaultStore() *Store {
	species := []*PlantSpecies{
		mustSpecies("cherry_tomatoes", "Cherry Tomatoes", "🍅", 60, 5.8, 6.5,
			"Needs plenty of sunlight and **regular nutrient monitoring**."),
		mustSpecies("spinach", "Spinach", "🥬", 40, 6.0, 7.0,
			"Grows best in cooler temperatures."),
		mustSpecies("lettuce", "Lettuce", "🥗", 30, 5.5, 6.5,
			"Quick growing, perfect for beginners."),
		mustSpecies("strawberry", "Strawberry", "🍓", 90, 5.5, 6.5,
			"Requires good air circulation."),
		mustSpecies("basil", "Basil", "🌿", 25, 5.5, 6.5,
			"Pinch flowers to encourage leaf growth."),
		mustSpecies("mint", "Mint", "🍃", 30, 6.0, 7.0,
			"Fast growing, prune regularly."),
	}

	packages := []*Package{
		mustPackage("balcony_40", "Balcony Starter (40 plants)", 3000, 40,
			"40-60 sq ft", "Perfect for small balconies"),
		mustPackage("balcony_60", "Balcony Premium (60 plants)", 4500, 60,
			"60-80 sq ft", "Enhanced balcony setup"),
		mustPackage("terrace_100", "Terrace Garden (100 plants)", 6000, 100,
			"100-150 sq ft", "Full terrace hydroponics system"),
	}

	store, err := NewStore(species, packages)
	if err != nil {
		panic(err)
	}
	return store
}
