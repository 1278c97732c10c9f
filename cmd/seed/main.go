// seed crea la primera cuenta admin y muestra su api key por stdout.
// Todos los endpoints mutadores exigen una llave con rol admin, así que sin
// este paso no hay forma de usar la API en una base vacía.
//
// Uso: go run ./cmd/seed -name "Admin" -email admin@example.com
// La configuración de conexión sale del entorno (DATABASE_URL, DATABASE_NAME).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/tu-usuario/mini-erp/internal/domain/entity"
	"github.com/tu-usuario/mini-erp/internal/infrastructure/mongodb"
	"github.com/tu-usuario/mini-erp/pkg/apikey"
	"github.com/tu-usuario/mini-erp/pkg/config"
	"github.com/tu-usuario/mini-erp/pkg/logger"
)

func main() {
	name := flag.String("name", "Admin", "nombre de la cuenta admin")
	email := flag.String("email", "", "email de la cuenta admin (requerido)")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "uso: seed -name <nombre> -email <email>")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.Timeout())
	defer cancel()

	client, err := mongodb.NewClient(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("cliente MongoDB")
	}
	defer client.Disconnect(context.Background())

	// A diferencia del servidor, el seed sí necesita el store arriba.
	if err := mongodb.Ping(ctx, client); err != nil {
		log.Fatal().Err(err).Msg("MongoDB no responde")
	}

	repo := mongodb.NewAccountRepository(client.Database(cfg.Mongo.Database))

	// Si ya existe una cuenta con ese email no insertamos otra: se reemite la llave.
	existing, err := repo.FindByEmail(ctx, *email)
	if err != nil {
		log.Fatal().Err(err).Msg("buscar cuenta")
	}

	key, err := apikey.New()
	if err != nil {
		log.Fatal().Err(err).Msg("generar api key")
	}

	if existing != nil {
		if err := repo.UpdateAPIKey(ctx, existing.ID.Hex(), key); err != nil {
			log.Fatal().Err(err).Msg("reemitir api key")
		}
		log.Info().Str("email", *email).Msg("cuenta existente, llave reemitida")
	} else {
		account := &entity.Account{
			Name:  *name,
			Email: *email,
			Role:  entity.RoleAdmin,
		}
		account.APIKey = key
		id, err := repo.Create(ctx, account)
		if err != nil {
			log.Fatal().Err(err).Msg("crear cuenta admin")
		}
		log.Info().Str("id", id).Str("email", *email).Msg("cuenta admin creada")
	}

	// La llave se muestra una única vez; guárdela.
	fmt.Println(key)
}
