package migrations

import "embed"

// FS embeds the SQL migration files in this directory. golang-migrate
// reads them through the iofs source driver when applying migrations.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version to migrate to on startup.
const Version = 1
