package model

import "time"

const TableNameDomainEvent = "domain_events"

// DomainEvent mapped from table <domain_events>.
type DomainEvent struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement:true" json:"id"`
	Type      string    `gorm:"column:type;not null" json:"type"`
	Tick      int64     `gorm:"column:tick;not null" json:"tick"`
	Payload   []byte    `gorm:"column:payload" json:"payload"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (*DomainEvent) TableName() string {
	return TableNameDomainEvent
}
