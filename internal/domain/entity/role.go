package entity

// UserType is the kind of account a user holds.
type UserType string

const (
	UserTypeUser     UserType = "user"
	UserTypeAdmin    UserType = "admin"
	UserTypeSupplier UserType = "supplier"
)

func (t UserType) String() string {
	return string(t)
}

// IsValid checks if the UserType is a known value.
func (t UserType) IsValid() bool {
	switch t {
	case UserTypeUser, UserTypeAdmin, UserTypeSupplier:
		return true
	default:
		return false
	}
}

// SenderType identifies which side of a chat wrote a message.
type SenderType string

const (
	SenderUser     SenderType = "user"
	SenderSupplier SenderType = "supplier"
)

func (t SenderType) IsValid() bool {
	return t == SenderUser || t == SenderSupplier
}
