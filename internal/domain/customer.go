package domain

type Customer struct {
	ID               int64  `json:"user_id"`
	Name             string `json:"name"`
	FavoriteCategory string `json:"favorite_category,omitempty"`
	// Returning is true when the customer has a persisted identifier.
	Returning bool `json:"-"`
}

// Status reports the POS member label: "Lama" for returning customers,
// "Baru" for customers without a persisted identifier yet.
func (c Customer) Status() string {
	if c.Returning {
		return "Lama"
	}
	return "Baru"
}
