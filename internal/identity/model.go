package identity

// Role is the closed set of dashboard roles known to the client.
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleContractor Role = "contractor"
	RoleWorker     Role = "worker"
	RoleShopkeeper Role = "shopkeeper"
	RoleDriver     Role = "driver"
	RoleAdmin      Role = "admin"
)

// Valid reports whether the role belongs to the closed set.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleContractor, RoleWorker, RoleShopkeeper, RoleDriver, RoleAdmin:
		return true
	}
	return false
}

// Identity is a registered user's stable profile. The phone number is the
// unique key; records are replaced whole, never patched field by field.
type Identity struct {
	Phone   string `json:"phone"`
	Name    string `json:"name"`
	Role    Role   `json:"role"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
}

// Validate rejects records that must never reach a dashboard. A record
// without a role is treated as corrupt and forces logout upstream.
func (id Identity) Validate() error {
	if id.Phone == "" {
		return ErrMissingPhone
	}
	if !id.Role.Valid() {
		return ErrMissingRole
	}
	return nil
}
