package infrastructure

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresClient struct {
	Pool *pgxpool.Pool
}

func NewPostgresClient(connString string) (*PostgresClient, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse connection string: %w", err)
	}

	// Pool configuration
	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	client := &PostgresClient{Pool: pool}

	if err := client.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return client, nil
}

func (p *PostgresClient) Migrate() error {
	ctx := context.Background()

	statements := []struct {
		name string
		sql  string
	}{
		{"operators", `
			CREATE TABLE IF NOT EXISTS operators (
				id SERIAL PRIMARY KEY,
				username VARCHAR(50) UNIQUE NOT NULL,
				password_hash VARCHAR(255) NOT NULL,
				role VARCHAR(20) DEFAULT 'agent',
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);
		`},
		{"clients", `
			CREATE TABLE IF NOT EXISTS clients (
				id SERIAL PRIMARY KEY,
				phone VARCHAR(32) UNIQUE NOT NULL,
				name VARCHAR(255),
				city VARCHAR(100),
				country VARCHAR(100),
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);
		`},
		{"products", `
			CREATE TABLE IF NOT EXISTS products (
				id SERIAL PRIMARY KEY,
				sku VARCHAR(50) UNIQUE NOT NULL,
				name VARCHAR(255) NOT NULL,
				description TEXT,
				usage_notes TEXT,
				price DECIMAL(12, 2) NOT NULL DEFAULT 0,
				discount_price DECIMAL(12, 2) DEFAULT 0,
				category VARCHAR(100),
				color VARCHAR(100),
				size VARCHAR(100),
				brand VARCHAR(100),
				rating DECIMAL(3, 1) DEFAULT 0,
				stock INT DEFAULT 0,
				is_featured BOOLEAN DEFAULT FALSE,
				is_active BOOLEAN DEFAULT TRUE,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);
		`},
		{"orders", `
			CREATE TABLE IF NOT EXISTS orders (
				id SERIAL PRIMARY KEY,
				lead_id INT,
				status VARCHAR(50) DEFAULT 'new',
				tracking_number VARCHAR(100),
				shipped_at TIMESTAMP,
				delivered_at TIMESTAMP,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);
		`},
		{"confirmations", `
			CREATE TABLE IF NOT EXISTS confirmations (
				id SERIAL PRIMARY KEY,
				reference VARCHAR(50) UNIQUE NOT NULL,
				client_id INT NOT NULL REFERENCES clients(id),
				order_id INT NOT NULL REFERENCES orders(id),
				product_id INT NOT NULL REFERENCES products(id),
				quantity INT DEFAULT 1,
				unit_price DECIMAL(12, 2) DEFAULT 0,
				line_total DECIMAL(12, 2) DEFAULT 0,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);
		`},
		{"faqs", `
			CREATE TABLE IF NOT EXISTS faqs (
				id SERIAL PRIMARY KEY,
				question TEXT NOT NULL,
				answer TEXT NOT NULL,
				language VARCHAR(20) NOT NULL DEFAULT 'arabic',
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);
		`},
		{"chat_interactions", `
			CREATE TABLE IF NOT EXISTS chat_interactions (
				id UUID PRIMARY KEY,
				sender VARCHAR(64) NOT NULL,
				input TEXT NOT NULL,
				output TEXT NOT NULL,
				language VARCHAR(20),
				sentiment VARCHAR(20),
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			);
		`},
	}

	for _, st := range statements {
		if _, err := p.Pool.Exec(ctx, st.sql); err != nil {
			return fmt.Errorf("create %s table: %w", st.name, err)
		}
	}

	// lookup paths used by the response engine
	p.Pool.Exec(ctx, "CREATE INDEX IF NOT EXISTS idx_clients_phone ON clients(phone);")
	p.Pool.Exec(ctx, "CREATE INDEX IF NOT EXISTS idx_faqs_language ON faqs(language);")
	p.Pool.Exec(ctx, "CREATE INDEX IF NOT EXISTS idx_chat_interactions_sender ON chat_interactions(sender, created_at DESC);")

	return nil
}

func (p *PostgresClient) Close() {
	p.Pool.Close()
}
