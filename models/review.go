package models

import "fmt"

// Review points at exactly one customer and one item. Customer and Item are
// back references for navigation only; their lifetime is owned elsewhere.
type Review struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Comment    string    `gorm:"type:text" json:"comment"`
	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	Customer   *Customer `gorm:"foreignKey:CustomerID;references:ID" json:"customer"`
	ItemID     uint      `gorm:"not null;index" json:"item_id"`
	Item       *Item     `gorm:"foreignKey:ItemID;references:ID" json:"item"`
}

func (Review) SerializeRules() []string {
	return []string{"-customer.reviews", "-item.reviews"}
}

func (r Review) String() string {
	return fmt.Sprintf("<Review %d, Customer %d, Item %d, '%s'>", r.ID, r.CustomerID, r.ItemID, r.Comment)
}
