package model

// Department 部门表，对应 department
// 删除部门时由数据库级联删除其下员工
type Department struct {
	ID             int    `gorm:"primaryKey;autoIncrement"`
	DepartmentName string `gorm:"type:varchar(50);not null"`

	// 关联
	Employees []Employee `gorm:"foreignKey:DepartmentID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName 指定表名
func (Department) TableName() string { return "department" }

// GetID 返回主键
func (d Department) GetID() int { return d.ID }
