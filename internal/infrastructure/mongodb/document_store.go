package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tu-usuario/mini-erp/internal/domain"
	"github.com/tu-usuario/mini-erp/internal/domain/repository"
)

// Asegura que Store implementa los puertos del dominio.
var (
	_ repository.DocumentStore    = (*Store)(nil)
	_ repository.StoreDiagnostics = (*Store)(nil)
)

// Store implementación del puerto DocumentStore sobre MongoDB.
type Store struct {
	db *mongo.Database
}

// NewStore construye el adaptador de persistencia genérico.
func NewStore(db *mongo.Database) *Store {
	return &Store{db: db}
}

// CreateDocument inserta un registro y devuelve el ObjectID asignado en hex.
// La escritura es durable al retornar; no hay transacción ni retry.
func (s *Store) CreateDocument(ctx context.Context, collection repository.Collection, record any) (string, error) {
	res, err := s.db.Collection(string(collection)).InsertOne(ctx, record)
	if err != nil {
		return "", fmt.Errorf("insert en %s: %w: %w", collection, domain.ErrStoreUnavailable, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Sprintf("%v", res.InsertedID), nil
	}
	return oid.Hex(), nil
}

// GetDocuments devuelve hasta limit registros en orden natural (sin sort),
// con el campo "_id" reescrito como string hex.
func (s *Store) GetDocuments(ctx context.Context, collection repository.Collection, limit int64) ([]repository.Document, error) {
	cur, err := s.db.Collection(string(collection)).Find(ctx, bson.D{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("find en %s: %w: %w", collection, domain.ErrStoreUnavailable, err)
	}
	defer cur.Close(ctx)

	var docs []repository.Document
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode de %s: %w: %w", collection, domain.ErrStoreUnavailable, err)
	}
	for _, d := range docs {
		if oid, ok := d["_id"].(primitive.ObjectID); ok {
			d["_id"] = oid.Hex()
		}
	}
	return docs, nil
}

// Ping verifica conectividad para el endpoint de diagnóstico.
func (s *Store) Ping(ctx context.Context) error {
	return Ping(ctx, s.db.Client())
}

// ListCollections devuelve hasta limit nombres de colecciones existentes.
func (s *Store) ListCollections(ctx context.Context, limit int) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("listar colecciones: %w", err)
	}
	if len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

// Name devuelve el nombre de la base configurada (para el diagnóstico).
func (s *Store) Name() string {
	return s.db.Name()
}
