package entities

import "time"

// KnowledgeEntry is one FAQ pair, read-only to the engine.
type KnowledgeEntry struct {
	ID       int64
	Question string
	Answer   string
	Locale   Locale
}

// ClientProfile is CRM data for one customer, read-only to the engine.
type ClientProfile struct {
	ID      int64
	Phone   string
	Name    string
	City    string
	Country string
}

// ProductRecord is one catalog item, read-only to the engine.
type ProductRecord struct {
	ID            int64
	SKU           string
	Name          string
	Description   string
	UsageNotes    string // how-to-use instructions shown on usage requests
	Price         float64
	DiscountPrice float64 // 0 means no discount
	Category      string
	Color         string
	Size          string
	Brand         string
	Rating        float64
	Stock         int
	IsFeatured    bool
	IsActive      bool
	CreatedAt     time.Time
}

// HasDiscount reports whether a lower promotional price applies.
func (p ProductRecord) HasDiscount() bool {
	return p.DiscountPrice > 0 && p.DiscountPrice < p.Price
}

// OrderRecord is one shipment, read-only to the engine.
type OrderRecord struct {
	ID             int64
	LeadID         int64
	Status         string
	TrackingNumber string
	ShippedAt      *time.Time
	DeliveredAt    *time.Time
	CreatedAt      time.Time
}

// OrderHistoryEntry is the join of one confirmation link with its
// client, order and ordered product line. The reference code comes from
// the import pipeline and is what customers quote back.
type OrderHistoryEntry struct {
	Reference   string
	Client      ClientProfile
	Order       OrderRecord
	ProductName string
	Quantity    int
	UnitPrice   float64
	LineTotal   float64
}

// ProductFilter narrows a recommendation query. Zero values mean
// "no constraint".
type ProductFilter struct {
	Category string
	MaxPrice float64
	New      bool
	Discount bool
	Popular  bool
	Best     bool
	Limit    int
}

// Operator is a staff account allowed to read the interaction archive.
type Operator struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}
