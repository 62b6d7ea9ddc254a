// seed_admin registra el primer trabajador (administrador) cuando la tabla trabajador está vacía.
// Todas las rutas de registro exigen token, así que este comando es la única forma de crear la
// primera cuenta.
//
// Uso: go run ./cmd/seed_admin -email admin@ventaspro.pe -password ******** -documento 12345678
// Los valores también se pueden pasar por entorno (SEED_ADMIN_EMAIL, SEED_ADMIN_PASSWORD, ...).
// La conexión a la base se toma de la misma configuración que la API (DB_*, DATABASE_URL).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/ventaspro-admin-api/internal/application/auth"
	"github.com/jhoicas/ventaspro-admin-api/internal/application/dto"
	"github.com/jhoicas/ventaspro-admin-api/internal/domain"
	"github.com/jhoicas/ventaspro-admin-api/internal/infrastructure/postgres"
	"github.com/jhoicas/ventaspro-admin-api/pkg/config"
	"github.com/jhoicas/ventaspro-admin-api/pkg/logger"
)

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	in := dto.RegisterWorkerRequest{}
	flag.StringVar(&in.Email, "email", envOr("SEED_ADMIN_EMAIL", ""), "email del administrador")
	flag.StringVar(&in.Password, "password", envOr("SEED_ADMIN_PASSWORD", ""), "contraseña (mínimo 6 caracteres)")
	flag.StringVar(&in.Name, "nombre", envOr("SEED_ADMIN_NOMBRE", "Administrador"), "nombre")
	flag.StringVar(&in.PaternalSurname, "apellido-paterno", envOr("SEED_ADMIN_APELLIDO_PATERNO", "VentasPro"), "apellido paterno")
	flag.StringVar(&in.MaternalSurname, "apellido-materno", envOr("SEED_ADMIN_APELLIDO_MATERNO", "Admin"), "apellido materno")
	flag.StringVar(&in.DocumentType, "tipo-documento", envOr("SEED_ADMIN_TIPO_DOCUMENTO", "DNI"), "tipo de documento")
	flag.StringVar(&in.DocumentNumber, "documento", envOr("SEED_ADMIN_DOCUMENTO", ""), "número de documento")
	flag.StringVar(&in.Country, "pais", envOr("SEED_ADMIN_PAIS", "Perú"), "país")
	flag.StringVar(&in.Department, "departamento", envOr("SEED_ADMIN_DEPARTAMENTO", "Lima"), "departamento")
	flag.StringVar(&in.Province, "provincia", envOr("SEED_ADMIN_PROVINCIA", "Lima"), "provincia")
	flag.StringVar(&in.District, "distrito", envOr("SEED_ADMIN_DISTRITO", "Lima"), "distrito")
	flag.StringVar(&in.Phone, "telefono", envOr("SEED_ADMIN_TELEFONO", "000000000"), "teléfono")
	flag.StringVar(&in.Address, "direccion", envOr("SEED_ADMIN_DIRECCION", "Sin dirección"), "dirección")
	flag.Int64Var(&in.WarehouseID, "almacen", 1, "id del almacén")
	flag.Int64Var(&in.RoleID, "rol", 1, "id del rol (1 = administrador)")
	force := flag.Bool("force", false, "registrar aunque ya existan trabajadores")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	uc := auth.NewWorkerUseCase(postgres.NewTxRunner(pool), postgres.NewWorkerRepository(pool), auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	exists, err := uc.HasWorkers(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("contar trabajadores")
	}
	if exists && !*force {
		log.Info().Msg("ya existen trabajadores; no se registra el administrador (use -force)")
		return
	}

	if _, err := uc.Register(ctx, in); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			log.Fatal().Str("detalle", domain.MessageOf(err)).Msg("datos del administrador inválidos")
		}
		log.Fatal().Err(err).Msg("registrar administrador")
	}
	log.Info().Str("email", in.Email).Msg("administrador registrado")
}
