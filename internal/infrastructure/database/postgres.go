package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/DiegoUniline/salon-sync-sub000/pkg/tenant"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresConfig contiene la configuración de conexión a PostgreSQL
type PostgresConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	SSLMode         string
	MaxConnections  int32
	MinConnections  int32
	MaxConnLifetime time.Duration
}

// NewPostgresConfigFromEnv crea la configuración a partir de variables de
// entorno
func NewPostgresConfigFromEnv() *PostgresConfig {
	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	maxConns, _ := strconv.Atoi(getEnv("DB_MAX_CONNECTIONS", "10"))
	minConns, _ := strconv.Atoi(getEnv("DB_MIN_CONNECTIONS", "2"))
	maxLifetime, _ := strconv.Atoi(getEnv("DB_MAX_LIFETIME", "300"))

	return &PostgresConfig{
		Host:            getEnv("DB_HOST", "localhost"),
		Port:            port,
		User:            getEnv("DB_USER", "postgres"),
		Password:        getEnv("DB_PASSWORD", "postgres"),
		Database:        getEnv("DB_NAME", "salon_sync"),
		SSLMode:         getEnv("DB_SSL_MODE", "disable"),
		MaxConnections:  int32(maxConns),
		MinConnections:  int32(minConns),
		MaxConnLifetime: time.Duration(maxLifetime) * time.Second,
	}
}

// ConnectionString retorna la cadena de conexión a PostgreSQL
func (c *PostgresConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// PostgresDB administra la conexión a PostgreSQL
type PostgresDB struct {
	pool   *pgxpool.Pool
	config *PostgresConfig
}

// NewPostgresDB crea el pool de conexiones a la base de datos
func NewPostgresDB(config *PostgresConfig) (*PostgresDB, error) {
	poolConfig, err := pgxpool.ParseConfig(config.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("error al analizar la configuración del pool: %w", err)
	}

	poolConfig.MaxConns = config.MaxConnections
	poolConfig.MinConns = config.MinConnections
	poolConfig.MaxConnLifetime = config.MaxConnLifetime
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("error al crear el pool de conexiones: %w", err)
	}

	// Probar la conexión
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("error al verificar la conexión a la base de datos: %w", err)
	}

	return &PostgresDB{
		pool:   pool,
		config: config,
	}, nil
}

// GetConnection retorna una conexión del pool
func (db *PostgresDB) GetConnection(ctx context.Context) (*pgxpool.Conn, error) {
	return db.pool.Acquire(ctx)
}

// GetTenantConnection retorna una conexión configurada con el schema del
// tenant presente en el contexto
func (db *PostgresDB) GetTenantConnection(ctx context.Context) (*pgxpool.Conn, error) {
	conn, err := db.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al adquirir conexión del pool: %w", err)
	}

	tenantID := tenant.GetTenantID(ctx)
	if tenantID == "" {
		// Sin tenant se usa el schema public
		_, err = conn.Exec(ctx, "SET search_path TO public")
		if err != nil {
			conn.Release()
			return nil, fmt.Errorf("error al definir el schema public: %w", err)
		}
		return conn, nil
	}

	// Buscar el schema del tenant
	var schema string
	err = conn.QueryRow(ctx,
		"SELECT schema FROM tenants WHERE id = $1",
		tenantID).Scan(&schema)

	if err != nil {
		conn.Release()
		return nil, fmt.Errorf("error al buscar el schema del tenant: %w", err)
	}

	_, err = conn.Exec(ctx, fmt.Sprintf("SET search_path TO %s, public", schema))
	if err != nil {
		conn.Release()
		return nil, fmt.Errorf("error al definir el schema del tenant: %w", err)
	}

	return conn, nil
}

// CreateTenantSchema crea el schema de un tenant nuevo
func (db *PostgresDB) CreateTenantSchema(ctx context.Context, schema string) error {
	conn, err := db.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("error al adquirir conexión del pool: %w", err)
	}
	defer conn.Release()

	_, err = conn.Exec(ctx, fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", schema))
	if err != nil {
		return fmt.Errorf("error al crear el schema: %w", err)
	}

	_, err = conn.Exec(ctx, fmt.Sprintf("GRANT ALL ON SCHEMA %s TO %s", schema, db.config.User))
	if err != nil {
		return fmt.Errorf("error al configurar permisos del schema: %w", err)
	}

	return nil
}

// Close cierra el pool de conexiones
func (db *PostgresDB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Transaction ejecuta una función dentro de una transacción
func (db *PostgresDB) Transaction(ctx context.Context, txFunc func(tx pgx.Tx) error) error {
	conn, err := db.GetTenantConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error al iniciar la transacción: %w", err)
	}

	if err := txFunc(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			log.Printf("error al hacer rollback: %v", rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error al hacer commit: %w", err)
	}

	return nil
}

// getEnv retorna el valor de una variable de entorno o un valor por defecto
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
