package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id, err := parseID("42", "product id")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	for _, raw := range []string{"0", "-1", "abc", ""} {
		_, err := parseID(raw, "product id")
		assert.Error(t, err, raw)
	}
}

func TestParseQuantity(t *testing.T) {
	n, err := parseQuantity("1000")
	require.NoError(t, err)
	assert.Equal(t, 1000, n)

	_, err = parseQuantity("lots")
	assert.Error(t, err)
}

func TestCommandTree(t *testing.T) {
	want := map[string][]string{
		"catalog":  {"list", "add-product", "edit-product", "delete-product"},
		"cart":     {"show", "add", "set", "inc", "dec", "remove", "clear", "checkout"},
		"orders":   {"list", "show"},
		"customer": {"show", "edit"},
		"tile":     {"once", "watch"},
	}
	for parent, children := range want {
		for _, child := range children {
			cmd, _, err := rootCmd.Find([]string{parent, child})
			require.NoError(t, err, "%s %s", parent, child)
			assert.Equal(t, child, cmd.Name())
		}
	}
	cmd, _, err := rootCmd.Find([]string{"seed"})
	require.NoError(t, err)
	assert.Equal(t, "seed", cmd.Name())
}

func TestProductPatchFromFlagsOnlySetsChangedFields(t *testing.T) {
	cmd := catalogEditProductCmd
	require.NoError(t, cmd.Flags().Set("price", "648.99"))
	require.NoError(t, cmd.Flags().Set("published", "2024-03-01"))
	patch, err := productPatchFromFlags(cmd)
	require.NoError(t, err)

	assert.Nil(t, patch.Title)
	assert.Nil(t, patch.DiscountPercentage)
	require.NotNil(t, patch.ListPrice)
	assert.Equal(t, "648.99", patch.ListPrice.String())
	require.NotNil(t, patch.DatePublished)
	assert.Equal(t, "2024-03-01", patch.DatePublished.Format("2006-01-02"))

	require.NoError(t, cmd.Flags().Set("discount", "ten"))
	_, err = productPatchFromFlags(cmd)
	assert.Error(t, err)
}

func TestCustomerPatchFromFlagsParsesBirthDate(t *testing.T) {
	cmd := customerEditCmd
	require.NoError(t, cmd.Flags().Set("email", "jane@example.com"))
	require.NoError(t, cmd.Flags().Set("birth-date", "1990-04-12"))
	patch, err := customerPatchFromFlags(cmd)
	require.NoError(t, err)

	assert.Nil(t, patch.FirstName)
	require.NotNil(t, patch.Email)
	assert.Equal(t, "jane@example.com", *patch.Email)
	require.NotNil(t, patch.BirthDate)
	assert.Equal(t, "1990-04-12", time.Time(*patch.BirthDate).Format("2006-01-02"))

	require.NoError(t, cmd.Flags().Set("birth-date", "12/04/1990"))
	_, err = customerPatchFromFlags(cmd)
	assert.Error(t, err)
}
