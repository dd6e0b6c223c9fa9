package domain

// Identity represents the authenticated principal.
//
// All fields arrive atomically from a single auth response; an Identity is
// never partially constructed. The role never changes for the lifetime of a
// session, and Verified only flips false→true through the admin approval
// action on the backend, never locally.
type Identity struct {
	ID          string `json:"id"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	FranchiseID string `json:"franchise_id,omitempty"`
	Verified    bool   `json:"is_verified"`
}

// Valid reports whether the identity carries the fields every auth response
// must provide. Used when restoring persisted identities: anything short of
// this is treated as absent.
func (i *Identity) Valid() bool {
	if i == nil {
		return false
	}
	return i.ID != "" && i.Email != "" && i.Role.Validate() == nil
}
