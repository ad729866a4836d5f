package types

// EntityID - уникальный идентификатор сущности в пределах уровня.
type EntityID uint64
