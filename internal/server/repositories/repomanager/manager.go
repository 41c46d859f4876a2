// Package repomanager vends repository implementations bound to a DBTX and
// owns schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/svcadmin/internal/dbx"
	"github.com/dmitrijs2005/svcadmin/internal/server/repositories/services"
	"github.com/dmitrijs2005/svcadmin/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Services(db dbx.DBTX) services.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
