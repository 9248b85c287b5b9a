package srp

import (
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrEmptyName is returned when a user is constructed without a name.
	ErrEmptyName = errors.New("srp: empty user name")

	// ErrNegativeAge is returned when a user is constructed with age < 0.
	ErrNegativeAge = errors.New("srp: negative user age")

	// ErrNilUser is returned when a repository is asked to save a nil user.
	ErrNilUser = errors.New("srp: nil user")
)

// User is the record at the center of the example. It knows nothing about
// where it is stored or how it is printed.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// NewUser builds a User with a fresh ID.
func NewUser(name string, age int) (*User, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if age < 0 {
		return nil, ErrNegativeAge
	}
	return &User{ID: uuid.NewString(), Name: name, Age: age}, nil
}
