package database

import (
	"testing"

	"github.com/desteklab/concierge/pkg/database"
	"github.com/desteklab/concierge/test/util"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to an external PostgreSQL
// service container. In local dev: spins up a shared testcontainer.
// The schema is dropped automatically when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
