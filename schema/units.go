package schema

// Title returns the long unit name, e.g. "Kilograms".
func (u UnitSystem) Title() string {
	if u == ImperialUnits {
		return "Pounds"
	}
	return "Kilograms"
}

// Label returns the short unit label, e.g. "kg".
func (u UnitSystem) Label() string {
	if u == ImperialUnits {
		return "lb"
	}
	return "kg"
}

// ToDisplay converts a canonical kilogram value into this unit.
// Unknown unit systems are treated as metric.
func (u UnitSystem) ToDisplay(kg float64) float64 {
	if u == ImperialUnits {
		return kg * PoundsPerKilogram
	}
	return kg
}

// ToKilograms converts a value entered in this unit back to kilograms.
func (u UnitSystem) ToKilograms(v float64) float64 {
	if u == ImperialUnits {
		return v / PoundsPerKilogram
	}
	return v
}
