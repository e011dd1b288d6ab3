package models

// Business identifies one of the four product lines tracked by the dashboard.
type Business string

const (
	BusinessHoney     Business = "honey"
	BusinessWeed      Business = "weed"
	BusinessFish      Business = "fish"
	BusinessMushrooms Business = "mushrooms"
)

// Businesses lists every business unit in display order.
var Businesses = []Business{BusinessHoney, BusinessWeed, BusinessFish, BusinessMushrooms}

// IsValid reports whether b belongs to the closed set of business units.
func (b Business) IsValid() bool {
	switch b {
	case BusinessHoney, BusinessWeed, BusinessFish, BusinessMushrooms:
		return true
	}
	return false
}

// BusinessInfo carries presentation metadata for a business unit.
type BusinessInfo struct {
	Business Business `json:"business"`
	Name     string   `json:"name"`
	Color    string   `json:"color"`
}

var businessInfo = map[Business]BusinessInfo{
	BusinessHoney:     {Business: BusinessHoney, Name: "Honey", Color: "amber"},
	BusinessWeed:      {Business: BusinessWeed, Name: "Legal Weed", Color: "emerald"},
	BusinessFish:      {Business: BusinessFish, Name: "Fish", Color: "sky"},
	BusinessMushrooms: {Business: BusinessMushrooms, Name: "Exotic Mushrooms", Color: "violet"},
}

// Info returns the display metadata of b. Unknown units get their raw value as name.
func (b Business) Info() BusinessInfo {
	if info, ok := businessInfo[b]; ok {
		return info
	}
	return BusinessInfo{Business: b, Name: string(b)}
}

// SummaryData is the per-unit aggregate shown on the dashboard home page.
type SummaryData struct {
	Business        Business `bson:"business" json:"business"`
	TotalSales      float64  `bson:"total_sales" json:"totalSales"`
	TotalExpenses   float64  `bson:"total_expenses" json:"totalExpenses"`
	Profit          float64  `bson:"profit" json:"profit"`
	InventoryStatus string   `bson:"inventory_status" json:"inventoryStatus"`
	InventoryValue  float64  `bson:"inventory_value" json:"inventoryValue"`
}
