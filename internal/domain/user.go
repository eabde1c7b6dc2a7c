package domain

// User is a person record. Email is only checked for presence.
type User struct {
	ID        int64  `json:"id"`
	Firstname string `json:"firstname" validate:"required"`
	Lastname  string `json:"lastname"  validate:"required"`
	Email     string `json:"email"     validate:"required"`
	City      string `json:"city"      validate:"required"`
	Language  string `json:"language"  validate:"required"`
}

var userFields = []field{
	{name: "firstname", kind: textField},
	{name: "lastname", kind: textField},
	{name: "email", kind: textField},
	{name: "city", kind: textField},
	{name: "language", kind: textField},
}

// ValidateUser checks a raw user payload and returns the normalized record.
func ValidateUser(mode Mode, in Input) (User, error) {
	return validateRecord(mode, in, userFields, func(v values) User {
		return User{
			Firstname: v.text("firstname"),
			Lastname:  v.text("lastname"),
			Email:     v.text("email"),
			City:      v.text("city"),
			Language:  v.text("language"),
		}
	})
}
