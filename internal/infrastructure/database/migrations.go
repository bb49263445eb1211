package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RunTenantMigrations aplica las migraciones en el schema de un tenant
func RunTenantMigrations(schema string) error {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		// Construir la URL a partir de las variables individuales
		dbURL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_HOST"),
			os.Getenv("DB_PORT"),
			os.Getenv("DB_NAME"),
			os.Getenv("DB_SSL_MODE"),
		)
	}

	// Conectar para crear el schema si no existe
	db, err := pgxpool.New(context.Background(), dbURL)
	if err != nil {
		return fmt.Errorf("error al conectar a la base de datos: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(context.Background(), fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", schema)); err != nil {
		return fmt.Errorf("error al crear el schema: %v", err)
	}

	if _, err := db.Exec(context.Background(), fmt.Sprintf("SET search_path TO %s, public", schema)); err != nil {
		return fmt.Errorf("error al configurar el search_path: %v", err)
	}

	// URL de migraciones con el schema del tenant
	separator := "?"
	if strings.Contains(dbURL, "?") {
		separator = "&"
	}
	dbURL = fmt.Sprintf("%s%ssearch_path=%s,public", dbURL, separator, schema)

	migrationsPath := filepath.Join("migrations", "tenant")
	sourceURL := fmt.Sprintf("file://%s", migrationsPath)

	m, err := migrate.New(sourceURL, dbURL)
	if err != nil {
		return fmt.Errorf("error al crear migrate: %v", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("error al aplicar migraciones: %v", err)
	}

	log.Printf("Migraciones aplicadas en el schema %s", schema)
	return nil
}
