package costs

// DefaultProfiles returns the tariff seeded on first run.
func DefaultProfiles() []Profile {
	return []Profile{
		hall("ACROBAT HALL", 7000, 4000, 10000, 1500, 2500, 15000, 10),
		hall("UNITY HALL", 6000, 3500, 9000, 1400, 2300, 12000, 8),
		hall("AZIKIWE HALL", 6500, 3700, 9500, 1600, 2200, 13000, 9),
		hall("EMERALD HALL", 7200, 4200, 11000, 1800, 2800, 16000, 11),
		hall("DIAMOND HALL", 7000, 4000, 10000, 1500, 2500, 15000, 10),
		hall("GOLDEN HALL", 6800, 3800, 9500, 1700, 2400, 14000, 9),
		hall("LIBERTY HALL", 7100, 3900, 10000, 1600, 2600, 14500, 10),
		hall("CRYSTAL HALL", 7500, 4300, 10500, 1900, 2700, 15500, 10),
		hall("PEARL HALL", 6400, 3600, 9200, 1400, 2200, 12500, 8),
		hall("GOWON HALL", 6900, 3700, 9800, 1550, 2350, 13500, 9),
		hall("PATRICK HALL", 7100, 3900, 10000, 1650, 2400, 14500, 10),
		hall("CECILIA HALL", 7300, 4000, 10200, 1700, 2500, 15000, 10),

		room("Deluxe", 3000, 1500, 4000, 500, 800, 5000, 6),
		room("Executive", 3500, 1700, 4500, 600, 900, 5500, 7),
		room("Royal", 4000, 1800, 5000, 650, 1000, 6000, 8),
		room("Royal Single", 3800, 1700, 4600, 600, 950, 5600, 7),
		room("Ambassadorial Suite", 5000, 2500, 6000, 800, 1200, 8000, 9),
		room("Royal Double", 4200, 1900, 5300, 700, 1100, 6500, 8),
		room("Presidential Suite", 5500, 2700, 6500, 900, 1300, 9000, 10),
	}
}

func hall(name string, utility, maintenance, staffing, consumable, marketing, asset float64, lifespan int) Profile {
	return newProfile(name, CategoryHall, utility, maintenance, staffing, consumable, marketing, asset, lifespan)
}

func room(name string, utility, maintenance, staffing, consumable, marketing, asset float64, lifespan int) Profile {
	return newProfile(name, CategoryRoom, utility, maintenance, staffing, consumable, marketing, asset, lifespan)
}

func newProfile(name string, category Category, utility, maintenance, staffing, consumable, marketing, asset float64, lifespan int) Profile {
	return Profile{
		Name:            name,
		Category:        category,
		UtilityCost:     utility,
		MaintenanceCost: maintenance,
		StaffingCost:    staffing,
		ConsumableCost:  consumable,
		MarketingCost:   marketing,
		AssetCost:       asset,
		Lifespan:        lifespan,
	}
}
