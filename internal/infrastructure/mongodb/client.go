package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/tu-usuario/mini-erp/pkg/config"
)

// NewClient crea el cliente de MongoDB a partir de la configuración de la app.
// La conexión es perezosa: Connect no marca error si el servidor no responde,
// eso se detecta recién en Ping o en la primera operación. Así el proceso
// arranca aunque el store esté caído y /test puede reportar el estado degradado.
func NewClient(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URL).
		SetServerSelectionTimeout(cfg.Timeout()).
		SetConnectTimeout(cfg.Timeout())

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("crear cliente mongo: %w", err)
	}
	return client, nil
}

// Ping verifica conectividad contra el primario.
func Ping(ctx context.Context, client *mongo.Client) error {
	return client.Ping(ctx, readpref.Primary())
}
