package unit

import (
	"testing"

	"github.com/localnerve/httpassert/tests/harness"
	"github.com/localnerve/httpassert/tests/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixtureClosesAppDatabase(t *testing.T) {
	f := harness.NewFixture(helpers.AppFactory(helpers.TestConfig()))

	built, err := f.App()
	require.NoError(t, err)
	first, ok := built.(*helpers.App)
	require.True(t, ok)

	sqlDB, err := first.DB.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Ping())

	_, err = f.Refresh()
	require.NoError(t, err)
	assert.Error(t, sqlDB.Ping(), "database of a replaced app stays open")

	f.Client(t).Get("/health").AssertOk()

	require.NoError(t, f.Reset())
}
