package model

// Entity 所有持久化模型的公共约束：以整数主键标识，并声明表名。
// 泛型仓储以此约束实体类型。
type Entity interface {
	TableName() string
	GetID() int
}

// All 返回全部模型，供 AutoMigrate 使用（按外键依赖顺序）
func All() []interface{} {
	return []interface{}{
		&Department{},
		&Employee{},
	}
}
