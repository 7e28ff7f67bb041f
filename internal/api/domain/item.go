package domain

type Item struct {
	ID       string
	Name     string
	Category string
	Price    float64
	Status   string
}

// ItemUpdate is a partial update of an item document.
type ItemUpdate struct {
	Name     *string
	Category *string
	Price    *float64
	Status   *string
}

// IsEmpty reports whether no field is set.
func (u ItemUpdate) IsEmpty() bool {
	return u.Name == nil && u.Category == nil && u.Price == nil && u.Status == nil
}
