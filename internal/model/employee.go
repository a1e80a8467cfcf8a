package model

import "github.com/shopspring/decimal"

// Employee 员工表，对应 employee
type Employee struct {
	ID           int             `gorm:"primaryKey;autoIncrement"`
	Name         string          `gorm:"type:varchar(30);not null"`
	Age          int             `gorm:"not null;check:age BETWEEN 21 AND 100"`
	Salary       decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	DepartmentID int             `gorm:"not null;index"`

	// 关联
	Department *Department `gorm:"foreignKey:DepartmentID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName 指定表名
func (Employee) TableName() string { return "employee" }

// GetID 返回主键
func (e Employee) GetID() int { return e.ID }
