package domain

// BeverageCategory marks the drink bucket; every other category is food.
const BeverageCategory = "Minuman"

type MenuItem struct {
	ID       int64  `json:"menu_id"`
	Name     string `json:"menu_name"`
	Price    int64  `json:"price"`
	Category string `json:"category"`
}

func (m MenuItem) IsBeverage() bool {
	return m.Category == BeverageCategory
}
