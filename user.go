package gelbook

import "github.com/google/uuid"

// DefaultUserID identifies the built-in user that always exists and can never
// be deleted.
const DefaultUserID = "user"

// User owns transactions. Its ID is created once and immutable thereafter.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	TaxpayerID string `json:"taxpayerId"`
}

// NewUser creates a user with a fresh unique ID.
func NewUser(name, taxpayerID string) User {
	return User{ID: "user_" + uuid.NewString(), Name: name, TaxpayerID: taxpayerID}
}

// NewDefaultUser creates the built-in default user.
func NewDefaultUser() User {
	return User{ID: DefaultUserID, Name: DefaultUserID}
}

// MarshalJSON keeps the persisted field order stable.
func (u User) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", u.ID)
	w.Append("name", u.Name)
	w.Append("taxpayerId", u.TaxpayerID)
	return w.MarshalJSON()
}
