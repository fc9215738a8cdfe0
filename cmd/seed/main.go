// Command seed crea el schema y las tablas del chatbot si no existen y carga
// los datos iniciales (roles, usuarios administrativos, productos de muestra,
// pedidos y FAQs). Es idempotente: se puede ejecutar varias veces.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/chatbot-admin-api/internal/application/auth"
	"github.com/jhoicas/chatbot-admin-api/internal/infrastructure/postgres"
	"github.com/jhoicas/chatbot-admin-api/pkg/config"
	"github.com/jhoicas/chatbot-admin-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo conectar a la base de datos")
	}
	defer pool.Close()

	schema := cfg.DB.Schema

	ddl := []string{
		fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %s`, schema),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.roles (
			role_id   SERIAL PRIMARY KEY,
			role_name VARCHAR(50) NOT NULL UNIQUE
		)`, schema),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.users (
			user_id  SERIAL PRIMARY KEY,
			username VARCHAR(100) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL,
			role_id  INTEGER NOT NULL REFERENCES %s.roles(role_id)
		)`, schema, schema),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.products (
			product_id    SERIAL PRIMARY KEY,
			product_name  VARCHAR(200) NOT NULL,
			current_stock INTEGER NOT NULL DEFAULT 0,
			moq           INTEGER NOT NULL DEFAULT 1,
			quantity_type VARCHAR(20) NOT NULL
		)`, schema),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.orders (
			order_id           SERIAL PRIMARY KEY,
			user_id            INTEGER NOT NULL REFERENCES %s.users(user_id),
			product_id         INTEGER NOT NULL REFERENCES %s.products(product_id),
			status             VARCHAR(20) NOT NULL DEFAULT 'pending',
			estimated_delivery DATE
		)`, schema, schema, schema),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.faq (
			faq_id   SERIAL PRIMARY KEY,
			question TEXT NOT NULL,
			answer   TEXT NOT NULL
		)`, schema),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.unanswered_questions (
			uq_id    SERIAL PRIMARY KEY,
			question TEXT NOT NULL,
			status   VARCHAR(20) NOT NULL DEFAULT 'new'
		)`, schema),
	}

	for _, stmt := range ddl {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			log.Fatal().Err(err).Msg("error creando schema/tablas")
		}
	}
	log.Info().Str("schema", schema).Msg("tablas verificadas")

	// Roles
	roles := []string{"System Admin", "Application Admin", "Product Admin", "Order Admin", "End User"}
	for _, name := range roles {
		if _, err := pool.Exec(ctx,
			`INSERT INTO roles (role_name) VALUES ($1) ON CONFLICT (role_name) DO NOTHING`, name); err != nil {
			log.Fatal().Err(err).Str("role", name).Msg("error sembrando roles")
		}
	}

	// Usuarios administrativos + usuario final de prueba
	type seedUser struct {
		username string
		password string
		role     string
	}
	users := []seedUser{
		{"app_admin", "admin123", "Application Admin"},
		{"product_admin", "admin123", "Product Admin"},
		{"order_admin", "admin123", "Order Admin"},
		{"testuser", "test123", "End User"},
	}
	for _, u := range users {
		if _, err := pool.Exec(ctx,
			`INSERT INTO users (username, password, role_id)
			 SELECT $1, $2, role_id FROM roles WHERE role_name = $3
			 ON CONFLICT (username) DO NOTHING`,
			u.username, auth.HashPassword(u.password), u.role); err != nil {
			log.Fatal().Err(err).Str("username", u.username).Msg("error sembrando usuarios")
		}
	}

	// Productos de muestra
	type seedProduct struct {
		name    string
		stock   int
		moq     int
		qtyType string
	}
	products := []seedProduct{
		{"Jacket", 50, 1, "pcs"},
		{"Shoes", 30, 1, "pcs"},
		{"Headphones", 25, 1, "pcs"},
		{"Laptop 2000", 10, 1, "pcs"},
		{"Smartphone 500", 20, 1, "pcs"},
	}
	for _, p := range products {
		if _, err := pool.Exec(ctx,
			`INSERT INTO products (product_name, current_stock, moq, quantity_type)
			 SELECT $1, $2, $3, $4
			 WHERE NOT EXISTS (SELECT 1 FROM products WHERE product_name = $1)`,
			p.name, p.stock, p.moq, p.qtyType); err != nil {
			log.Fatal().Err(err).Str("product", p.name).Msg("error sembrando productos")
		}
	}

	// Pedidos de muestra para testuser
	type seedOrder struct {
		product  string
		status   string
		delivery string
	}
	orders := []seedOrder{
		{"Jacket", "Shipped", "2025-06-10"},
		{"Headphones", "Processing", "2025-06-12"},
		{"Shoes", "Shipped", "2025-06-10"},
	}
	for _, o := range orders {
		delivery, err := time.Parse("2006-01-02", o.delivery)
		if err != nil {
			log.Fatal().Err(err).Msg("fecha de entrega inválida en seed")
		}
		if _, err := pool.Exec(ctx,
			`INSERT INTO orders (user_id, product_id, status, estimated_delivery)
			 SELECT u.user_id, p.product_id, $3, $4
			 FROM users u, products p
			 WHERE u.username = 'testuser' AND p.product_name = $1
			   AND NOT EXISTS (
			       SELECT 1 FROM orders o
			       JOIN products op ON op.product_id = o.product_id
			       WHERE op.product_name = $1 AND o.status = $2
			   )`,
			o.product, o.status, o.status, delivery); err != nil {
			log.Fatal().Err(err).Str("product", o.product).Msg("error sembrando pedidos")
		}
	}

	// FAQs
	faqs := [][2]string{
		{"What are your store hours?", "Our store is open 9 AM–9 PM Monday through Saturday, and 10 AM–6 PM on Sundays."},
		{"What is your return policy?", "You can return any item within 30 days for a full refund. Just visit our Returns page."},
		{"How can I contact support?", "You can reach us at support@example.com or call 1-800-123-4567."},
	}
	for _, f := range faqs {
		if _, err := pool.Exec(ctx,
			`INSERT INTO faq (question, answer)
			 SELECT $1, $2
			 WHERE NOT EXISTS (SELECT 1 FROM faq WHERE question = $1)`,
			f[0], f[1]); err != nil {
			log.Fatal().Err(err).Msg("error sembrando faqs")
		}
	}

	log.Info().Msg("seed completado")
	log.Info().Msg("credenciales: app_admin/admin123, product_admin/admin123, order_admin/admin123, testuser/test123")
}
