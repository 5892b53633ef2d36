package db

import (
	"database/sql"
	_ "embed"
	"log"
	"strings"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQLite string

//go:embed schema_postgres.sql
var schemaPostgres string

// InitDB opens the configured database and makes sure the tables exist.
// The driver is picked from the DSN: postgres:// goes to lib/pq, anything
// else is treated as a sqlite file path.
func InitDB(dsn string) *sql.DB {
	driver, schema := "sqlite3", schemaSQLite
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		driver, schema = "postgres", schemaPostgres
	}

	database, err := sql.Open(driver, dsn)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	if driver == "sqlite3" {
		// single writer; also keeps :memory: databases on one connection
		database.SetMaxOpenConns(1)
	}

	if err = database.Ping(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if _, err = database.Exec(schema); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	log.Println("✅ Database ready")
	return database
}
