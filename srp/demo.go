package srp

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Run is the driver for the example.
//
// It exercises the adhering design against both repositories and both
// reporters, then shows UserManager doing everything by itself.
func Run(ctx context.Context, w io.Writer) error {
	u, err := NewUser("Alice", 30)
	if err != nil {
		return err
	}

	sqlRepo, err := OpenSQLite(ctx, ":memory:")
	if err != nil {
		return err
	}
	defer func() { _ = sqlRepo.Close() }()

	repos := []struct {
		name string
		repo UserRepository
	}{
		{"memory", NewMemoryRepository()},
		{"sqlite", sqlRepo},
	}
	reporters := []Reporter{TextReporter{}, JSONReporter{}}

	fmt.Fprintln(w, "-- adhering: User + UserRepository + Reporter --")
	for _, r := range repos {
		if err := r.repo.Save(ctx, u); err != nil {
			return err
		}
		got, err := r.repo.FindByID(ctx, u.ID)
		if err != nil {
			return err
		}
		slog.DebugContext(ctx, "user loaded", "repository", r.name, "user_id", got.ID)

		fmt.Fprintf(w, "[%s]\n", r.name)
		for _, rep := range reporters {
			if err := rep.Report(w, got); err != nil {
				return err
			}
		}
	}

	fmt.Fprintln(w, "-- violating: UserManager --")
	m := NewUserManager("Alice", 30)
	if err := m.Save(); err != nil {
		return err
	}
	return m.Report(w)
}
