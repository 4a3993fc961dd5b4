package postgres

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/clasificador/pkg/config"
)

// PoolOptions dimensiona el pool según quién lo usa: la API atiende varios
// operadores, el cliente de terminal uno solo.
type PoolOptions struct {
	MaxConns int32
	MinConns int32
}

// APIPool y ClientPool son los tamaños usados por cmd/api y cmd/clasificador.
var (
	APIPool    = PoolOptions{MaxConns: 10, MinConns: 1}
	ClientPool = PoolOptions{MaxConns: 2, MinConns: 0}
)

// NewPool crea un pool de conexiones PostgreSQL con la configuración de la app
// y verifica la conexión con un ping.
func NewPool(ctx context.Context, cfg config.DBConfig, opts PoolOptions) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	poolConfig.ConnConfig.ConnectTimeout = 10 * time.Second
	poolConfig.ConnConfig.DialFunc = (&net.Dialer{KeepAlive: 30 * time.Second}).DialContext
	poolConfig.ConnConfig.RuntimeParams["application_name"] = "clasificador"

	poolConfig.MaxConns = opts.MaxConns
	poolConfig.MinConns = opts.MinConns
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}
