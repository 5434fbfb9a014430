package types

// User is the canonical server-issued account record. Fields are opaque to
// the client except through the explicit edit-profile flow, which replaces
// the whole record.
type User struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Role    string `json:"role"`
	Address string `json:"address"`
	Pincode string `json:"pincode"`
	Photo   string `json:"photo"`
	Token   string `json:"token,omitempty"`
}

// Merge returns a copy of the user with any non-zero submitted field applied
// on top, used by the edit-profile flow to combine submitted and
// server-returned fields.
func (u User) Merge(updated User) User {
	merged := u
	if updated.Name != "" {
		merged.Name = updated.Name
	}
	if updated.Email != "" {
		merged.Email = updated.Email
	}
	if updated.Phone != "" {
		merged.Phone = updated.Phone
	}
	if updated.Role != "" {
		merged.Role = updated.Role
	}
	if updated.Address != "" {
		merged.Address = updated.Address
	}
	if updated.Pincode != "" {
		merged.Pincode = updated.Pincode
	}
	if updated.Photo != "" {
		merged.Photo = updated.Photo
	}
	if updated.Token != "" {
		merged.Token = updated.Token
	}
	return merged
}
