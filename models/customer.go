package models

import "fmt"

// Customer owns its reviews: deleting a customer deletes every review it wrote.
type Customer struct {
	ID      uint     `gorm:"primaryKey" json:"id"`
	Name    *string  `gorm:"type:varchar(255)" json:"name"`
	Reviews []Review `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"reviews"`
}

// SerializeRules drops the customer back reference inside each nested review.
func (Customer) SerializeRules() []string {
	return []string{"-reviews.customer"}
}

// Items projects each review onto its item. Reviews whose Item was not
// preloaded are skipped; an item reviewed twice appears twice.
func (c Customer) Items() []Item {
	items := make([]Item, 0, len(c.Reviews))
	for _, r := range c.Reviews {
		if r.Item != nil {
			items = append(items, *r.Item)
		}
	}
	return items
}

func (c Customer) String() string {
	return fmt.Sprintf("<Customer %d, %s>", c.ID, orNone(c.Name))
}
