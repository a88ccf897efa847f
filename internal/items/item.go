package items

// Component is one recipe ingredient with its required quantity.
type Component struct {
	Name  string `json:"Name" yaml:"name"`
	Count int    `json:"Count" yaml:"count"`
}

// PowerSpec holds what an item generates vs. what it needs to operate.
type PowerSpec struct {
	Provides int `json:"Provides" yaml:"provides"`
	Consumes int `json:"Consumes" yaml:"consumes"`
}

// Consumable is a resource an item burns during operation, with the burn
// duration in hours.
type Consumable struct {
	Name  string  `json:"Name" yaml:"name"`
	Hours float64 `json:"Hours" yaml:"hours"`
}

// Item is one placeable record. Name is the unique key across the whole set.
// IsConsumable marks synthetic placeholder entries created for consumable
// names that never got their own page.
type Item struct {
	Name          string       `json:"Name" yaml:"name"`
	Recipe        []Component  `json:"Recipe" yaml:"recipe"`
	Power         PowerSpec    `json:"Power" yaml:"power"`
	WaterCapacity int          `json:"WaterCapacity" yaml:"water_capacity"`
	Consumables   []Consumable `json:"Consumables,omitempty" yaml:"consumables,omitempty"`
	IsConsumable  bool         `json:"IsConsumable,omitempty" yaml:"is_consumable,omitempty"`
}
