package types

// EntityID — идентификатор сущности внутри своего менеджера
type EntityID uint64
