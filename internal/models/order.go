package models

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Orderer is implemented by every model that has a default listing order.
type Orderer interface {
	DefaultOrder() []clause.OrderByColumn
}

// Ordered is a GORM scope applying the model's default order.
func Ordered(o Orderer) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, col := range o.DefaultOrder() {
			db = db.Order(col)
		}
		return db
	}
}

func desc(name string) clause.OrderByColumn {
	return clause.OrderByColumn{Column: clause.Column{Name: name}, Desc: true}
}

func asc(name string) clause.OrderByColumn {
	return clause.OrderByColumn{Column: clause.Column{Name: name}}
}
