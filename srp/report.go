package srp

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// Reporter is the presentation responsibility.
type Reporter interface {
	Report(w io.Writer, u *User) error
}

// TextReporter prints "name (age)".
type TextReporter struct{}

func (TextReporter) Report(w io.Writer, u *User) error {
	if u == nil {
		return ErrNilUser
	}
	_, err := fmt.Fprintf(w, "%s (%d)\n", u.Name, u.Age)
	return err
}

// JSONReporter prints the user as a single JSON line.
type JSONReporter struct{}

func (JSONReporter) Report(w io.Writer, u *User) error {
	if u == nil {
		return ErrNilUser
	}
	b, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("srp: encode user: %w", err)
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
