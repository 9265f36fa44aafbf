package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	for _, name := range []string{"serve", "migrate", "budget"} {
		c, _, err := RootCmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, c.Name())
	}

	c, _, err := RootCmd.Find([]string{"budget", "set"})
	require.NoError(t, err)
	assert.Equal(t, "set", c.Name())
}

func TestBudgetSet_RequiresFlags(t *testing.T) {
	RootCmd.SetArgs([]string{"budget", "set", "--category", "Food"})
	t.Cleanup(func() { RootCmd.SetArgs(nil) })

	err := RootCmd.Execute()

	assert.ErrorContains(t, err, "required flag(s)")
}

func TestBudgetSet_RejectsBadAmount(t *testing.T) {
	RootCmd.SetArgs([]string{"budget", "set", "--category", "Food", "--month", "1", "--year", "2024", "--amount", "lots"})
	t.Cleanup(func() { RootCmd.SetArgs(nil) })

	err := RootCmd.Execute()

	assert.ErrorContains(t, err, `invalid amount "lots"`)
}
