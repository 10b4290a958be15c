package models

import "fmt"

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
