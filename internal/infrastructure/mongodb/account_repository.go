package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tu-usuario/mini-erp/internal/domain"
	"github.com/tu-usuario/mini-erp/internal/domain/entity"
	"github.com/tu-usuario/mini-erp/internal/domain/repository"
)

// Asegura que AccountRepo implementa repository.AccountRepository.
var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación del puerto AccountRepository sobre MongoDB.
// Además del CRUD genérico del Store, el gate de auth necesita point-lookups
// por igualdad de campo y un point-update del api_key por id.
type AccountRepo struct {
	db *mongo.Database
}

// NewAccountRepository construye el adaptador de persistencia para cuentas.
func NewAccountRepository(db *mongo.Database) *AccountRepo {
	return &AccountRepo{db: db}
}

func (r *AccountRepo) collection() *mongo.Collection {
	return r.db.Collection(string(repository.CollectionAccount))
}

// Create persiste una cuenta nueva y devuelve el id asignado en hex.
func (r *AccountRepo) Create(ctx context.Context, account *entity.Account) (string, error) {
	res, err := r.collection().InsertOne(ctx, account)
	if err != nil {
		return "", fmt.Errorf("insert account: %w: %w", domain.ErrStoreUnavailable, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Sprintf("%v", res.InsertedID), nil
	}
	account.ID = oid
	return oid.Hex(), nil
}

// FindByAPIKey busca exactamente una cuenta con ese api_key. (nil, nil) si no existe.
func (r *AccountRepo) FindByAPIKey(ctx context.Context, key string) (*entity.Account, error) {
	return r.findOne(ctx, bson.M{"api_key": key}, "api_key")
}

// FindByEmail busca una cuenta por email. (nil, nil) si no existe.
// El email no es único en el modelo: si hay duplicados gana el primero en orden natural.
func (r *AccountRepo) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return r.findOne(ctx, bson.M{"email": email}, "email")
}

func (r *AccountRepo) findOne(ctx context.Context, filter bson.M, field string) (*entity.Account, error) {
	var a entity.Account
	err := r.collection().FindOne(ctx, filter).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find account por %s: %w: %w", field, domain.ErrStoreUnavailable, err)
	}
	return &a, nil
}

// UpdateAPIKey sobrescribe la llave de la cuenta. La llave anterior queda
// inválida de inmediato: el próximo lookup por ella no encontrará documento.
func (r *AccountRepo) UpdateAPIKey(ctx context.Context, id string, key string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: id de cuenta inválido", domain.ErrValidation)
	}
	res, err := r.collection().UpdateByID(ctx, oid, bson.M{"$set": bson.M{"api_key": key}})
	if err != nil {
		return fmt.Errorf("update api_key: %w: %w", domain.ErrStoreUnavailable, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
