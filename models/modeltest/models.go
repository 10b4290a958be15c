// Package modeltest mirrors package models with nullable review foreign
// keys, so persistence and serialization tests can save partially built
// reviews. It maps onto the same tables and must only be imported by tests.
package modeltest

import (
	"fmt"

	"github.com/yeremiapane/review-app/serializer"
)

type Customer struct {
	ID      uint     `gorm:"primaryKey" json:"id"`
	Name    *string  `gorm:"type:varchar(255)" json:"name"`
	Reviews []Review `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"reviews"`
}

func (Customer) SerializeRules() []string {
	return []string{"-reviews.customer"}
}

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

type Item struct {
	ID      uint     `gorm:"primaryKey" json:"id"`
	Name    *string  `gorm:"type:varchar(255)" json:"name"`
	Price   *float64 `gorm:"type:double" json:"price"`
	Reviews []Review `gorm:"foreignKey:ItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"reviews"`
}

func (Item) SerializeRules() []string {
	return []string{"-reviews.item"}
}

func (i Item) String() string {
	return fmt.Sprintf("<Item %d, %s, %s>", i.ID, orNone(i.Name), orNone(i.Price))
}

// Review allows NULL customer_id and item_id.
type Review struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Comment    string    `gorm:"type:text" json:"comment"`
	CustomerID *uint     `gorm:"index" json:"customer_id"`
	Customer   *Customer `gorm:"foreignKey:CustomerID;references:ID" json:"customer"`
	ItemID     *uint     `gorm:"index" json:"item_id"`
	Item       *Item     `gorm:"foreignKey:ItemID;references:ID" json:"item"`
}

func (Review) SerializeRules() []string {
	return []string{"-customer.reviews", "-item.reviews"}
}

func (r Review) String() string {
	return fmt.Sprintf("<Review %d, Customer %s, Item %s, '%s'>", r.ID, orNone(r.CustomerID), orNone(r.ItemID), r.Comment)
}

func orNone[T any](v *T) string {
	if v == nil {
		return "None"
	}
	return fmt.Sprint(*v)
}

func All() []interface{} {
	return []interface{}{&Customer{}, &Item{}, &Review{}}
}

func ToDict(v interface{}) map[string]interface{} {
	return serializer.ToDict(v)
}
