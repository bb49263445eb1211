package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/DiegoUniline/salon-sync-sub000/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// Migraciones del schema público: tenants, sucursales y usuarios. Las
// tablas de negocio viven en el schema de cada tenant y se aplican con
// las migraciones de migrations/tenant al crear el tenant
func main() {
	// Cargar variables de entorno
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: archivo .env no encontrado: %v", err)
	}

	config := database.NewPostgresConfigFromEnv()
	db, err := database.NewPostgresDB(config)
	if err != nil {
		log.Fatalf("Error al conectar a la base de datos: %v", err)
	}
	defer db.Close()

	if err := runMigrations(db); err != nil {
		log.Fatalf("Error al ejecutar migraciones: %v", err)
	}

	log.Println("Migraciones ejecutadas con éxito")
}

type migration struct {
	version string
	up      string
}

func runMigrations(db *database.PostgresDB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	conn, err := db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	if err := createMigrationsTable(ctx, conn); err != nil {
		return fmt.Errorf("error al crear la tabla de migraciones: %w", err)
	}

	lastMigration, err := getLastMigration(ctx, conn)
	if err != nil {
		return fmt.Errorf("error al consultar la última migración: %w", err)
	}

	log.Printf("Última migración ejecutada: %s", lastMigration)

	migrations := []migration{
		{
			version: "001_create_tenants",
			up: `
				-- Tabla de tenants (negocios)
				CREATE TABLE IF NOT EXISTS tenants (
					id UUID PRIMARY KEY,
					name VARCHAR(255) NOT NULL,
					document VARCHAR(20) UNIQUE NOT NULL,
					email VARCHAR(255),
					phone VARCHAR(20),
					status VARCHAR(20) NOT NULL,
					schema VARCHAR(50) NOT NULL,
					plan_type VARCHAR(50) NOT NULL,
					max_branches INTEGER NOT NULL DEFAULT 1,
					created_at TIMESTAMP NOT NULL,
					updated_at TIMESTAMP NOT NULL
				);

				-- Índices
				CREATE INDEX IF NOT EXISTS idx_tenants_status ON tenants(status);
				CREATE INDEX IF NOT EXISTS idx_tenants_document ON tenants(document);
			`,
		},
		{
			version: "002_create_branches",
			up: `
				-- Tabla de sucursales
				CREATE TABLE IF NOT EXISTS branches (
					id UUID PRIMARY KEY,
					tenant_id UUID NOT NULL REFERENCES tenants(id),
					name VARCHAR(255) NOT NULL,
					code VARCHAR(50) NOT NULL,
					address VARCHAR(255),
					city VARCHAR(255),
					phone VARCHAR(20),
					email VARCHAR(255),
					status VARCHAR(20) NOT NULL,
					is_main BOOLEAN NOT NULL DEFAULT false,
					created_at TIMESTAMP NOT NULL,
					updated_at TIMESTAMP NOT NULL,
					UNIQUE(tenant_id, code)
				);

				-- Índices
				CREATE INDEX IF NOT EXISTS idx_branches_tenant_id ON branches(tenant_id);
				CREATE INDEX IF NOT EXISTS idx_branches_status ON branches(status);
				CREATE INDEX IF NOT EXISTS idx_branches_is_main ON branches(is_main);
			`,
		},
		{
			version: "003_create_users",
			up: `
				-- Tabla de usuarios
				CREATE TABLE IF NOT EXISTS users (
					id UUID PRIMARY KEY,
					tenant_id UUID NOT NULL REFERENCES tenants(id),
					branch_id UUID REFERENCES branches(id),
					name VARCHAR(255) NOT NULL,
					email VARCHAR(255) NOT NULL,
					password VARCHAR(255) NOT NULL,
					role VARCHAR(50) NOT NULL,
					status VARCHAR(20) NOT NULL,
					last_login_at TIMESTAMP,
					created_at TIMESTAMP NOT NULL,
					updated_at TIMESTAMP NOT NULL,
					UNIQUE(tenant_id, email)
				);

				-- Índices
				CREATE INDEX IF NOT EXISTS idx_users_tenant_id ON users(tenant_id);
				CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);
				CREATE INDEX IF NOT EXISTS idx_users_status ON users(status);
			`,
		},
	}

	for _, m := range migrations {
		if m.version <= lastMigration {
			log.Printf("Saltando migración %s (ya ejecutada)", m.version)
			continue
		}

		log.Printf("Ejecutando migración %s", m.version)

		tx, err := conn.Begin(ctx)
		if err != nil {
			return fmt.Errorf("error al iniciar transacción: %w", err)
		}

		if _, err := tx.Exec(ctx, m.up); err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				log.Printf("Error al hacer rollback: %v", rbErr)
			}
			return fmt.Errorf("error al ejecutar la migración %s: %w", m.version, err)
		}

		if _, err := tx.Exec(ctx,
			"INSERT INTO migrations (version, executed_at) VALUES ($1, $2)",
			m.version, time.Now()); err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				log.Printf("Error al hacer rollback: %v", rbErr)
			}
			return fmt.Errorf("error al registrar la migración %s: %w", m.version, err)
		}

		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("error al confirmar la migración %s: %w", m.version, err)
		}

		log.Printf("Migración %s ejecutada con éxito", m.version)
	}

	return nil
}

func createMigrationsTable(ctx context.Context, conn *pgxpool.Conn) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version VARCHAR(100) PRIMARY KEY,
			executed_at TIMESTAMP NOT NULL
		)
	`
	_, err := conn.Exec(ctx, query)
	return err
}

func getLastMigration(ctx context.Context, conn *pgxpool.Conn) (string, error) {
	var version string
	err := conn.QueryRow(ctx,
		"SELECT version FROM migrations ORDER BY executed_at DESC LIMIT 1").Scan(&version)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	return version, nil
}
