package catalog_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/sghaida/solid/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_SOLIDOrder(t *testing.T) {
	t.Parallel()

	r := catalog.Default()
	assert.Equal(t, []string{"srp", "ocp", "lsp", "isp", "dip"}, r.Keys())

	for _, p := range r.All() {
		assert.NotEmpty(t, p.Name, p.Key)
		assert.NotEmpty(t, p.Summary, p.Key)
		assert.NotNil(t, p.Run, p.Key)
	}
}

// TestDefault_RunAll runs every demo end to end.
func TestDefault_RunAll(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, catalog.Default().Run(context.Background(), &buf))

	out := buf.String()
	for _, header := range []string{
		"== SRP: Single Responsibility ==",
		"== OCP: Open/Closed ==",
		"== LSP: Liskov Substitution ==",
		"== ISP: Interface Segregation ==",
		"== DIP: Dependency Inversion ==",
	} {
		assert.Contains(t, out, header)
	}
}
