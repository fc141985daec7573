package catalog

// SpeciesDTO is the serializable species view. CareTipHTML is the sanitized
// rendering of the markdown care tip.
type SpeciesDTO struct {
	ID            string  `json:"species_id"`
	DisplayName   string  `json:"display_name"`
	IconGlyph     string  `json:"icon_glyph"`
	DaysToHarvest int     `json:"days_to_harvest"`
	PHLow         float64 `json:"ph_low"`
	PHHigh        float64 `json:"ph_high"`
	CareTip       string  `json:"care_tip"`
	CareTipHTML   string  `json:"care_tip_html"`
}

// PackageDTO is the serializable package view. PriceDisplay is the localized
// human-readable price string.
type PackageDTO struct {
	ID            string `json:"package_id"`
	DisplayName   string `json:"display_name"`
	Price         int    `json:"price"`
	PriceDisplay  string `json:"price_display"`
	PlantCapacity int    `json:"plant_capacity"`
	AreaLabel     string `json:"area_label"`
	Description   string `json:"description"`
}

// FeatureDTO is one marketing feature card.
type FeatureDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}
