package auth

// Role is the closed set of portal roles. A profile's role is assigned once
// at account creation and is the sole authorization signal; anything outside
// this set resolves to nothing and is treated as unauthorized, never as a
// default elevated role.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleDoctor       Role = "doctor"
	RoleReceptionist Role = "receptionist"
	RoleUser         Role = "user"
)

// ParseRole maps a stored role string onto the closed role set. The second
// return value is false for empty or unknown strings.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleDoctor, RoleReceptionist, RoleUser:
		return Role(s), true
	}
	return "", false
}

// String returns the wire form of the role.
func (r Role) String() string { return string(r) }
