package repository

import "context"

// Collection nombre lógico de una colección del document store.
type Collection string

// Tabla estática entidad → colección. Reemplaza la convención dinámica
// "nombre de clase en minúsculas" del visor de schemas por un mapeo explícito.
const (
	CollectionCompany Collection = "company"
	CollectionModule  Collection = "module"
	CollectionAccount Collection = "useraccount"
	CollectionUser    Collection = "user"
	CollectionProduct Collection = "product"
)

// Document registro plano tal como vive en el store. En los listados el campo
// "_id" viene reescrito como string (hex del ObjectID).
type Document = map[string]any

// DocumentStore define el puerto de persistencia genérico (DIP).
// Las escrituras son durables al retornar; no hay transacciones ni retry.
type DocumentStore interface {
	// CreateDocument inserta un registro validado y devuelve el id asignado por el store.
	CreateDocument(ctx context.Context, collection Collection, record any) (string, error)
	// GetDocuments devuelve hasta limit registros en orden natural, con "_id" en string.
	GetDocuments(ctx context.Context, collection Collection, limit int64) ([]Document, error)
}

// StoreDiagnostics expone las sondas de conectividad que usa el endpoint /test.
type StoreDiagnostics interface {
	Ping(ctx context.Context) error
	// ListCollections devuelve hasta limit nombres de colecciones existentes.
	ListCollections(ctx context.Context, limit int) ([]string, error)
}
