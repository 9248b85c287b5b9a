package srp

import (
	"fmt"
	"io"
	"strconv"
)

// UserManager is the violating version: one type that holds the user, checks it,
// stores it and formats it. Changing any of those concerns means editing UserManager.
type UserManager struct {
	Name string
	Age  int

	// rows is a stand-in "database" baked into the type.
	rows map[string]string
}

// NewUserManager constructs a UserManager with its private storage.
func NewUserManager(name string, age int) *UserManager {
	return &UserManager{Name: name, Age: age, rows: make(map[string]string)}
}

// Save validates and persists the user as a CSV-ish row keyed by name.
func (m *UserManager) Save() error {
	if m.Name == "" {
		return ErrEmptyName
	}
	if m.Age < 0 {
		return ErrNegativeAge
	}
	m.rows[m.Name] = m.Name + "," + strconv.Itoa(m.Age)
	return nil
}

// Row returns the stored row for name.
func (m *UserManager) Row(name string) (string, bool) {
	r, ok := m.rows[name]
	return r, ok
}

// Report prints the user in the one format UserManager knows.
func (m *UserManager) Report(w io.Writer) error {
	_, err := fmt.Fprintf(w, "User: %s, Age: %d\n", m.Name, m.Age)
	return err
}
