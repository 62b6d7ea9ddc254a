package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/jhoicas/ventaspro-admin-api/internal/application/dto"
	"github.com/jhoicas/ventaspro-admin-api/internal/domain"
	"github.com/jhoicas/ventaspro-admin-api/internal/domain/entity"
	"github.com/jhoicas/ventaspro-admin-api/internal/domain/repository"
	"github.com/jhoicas/ventaspro-admin-api/pkg/jwt"
	"github.com/jhoicas/ventaspro-admin-api/pkg/password"
)

// Mensajes de registro y login.
const (
	MsgFieldsRequired      = "Todos los campos son obligatorios"
	MsgLoginFieldsRequired = "El email y la contraseña son obligatorios"
	MsgUserNotFound        = "Usuario no encontrado"
	MsgBadCredentials      = "Usuario y contraseña incorrectos"
	MsgPasswordTooLong     = "La contraseña no puede superar 72 bytes"
	MsgWorkerDuplicated    = "El email o el número de documento ya está registrado"
	msgRegisterFailed      = "Error en el registro de trabajador"
	msgLoginFailed         = "Error en el login de trabajador"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// WorkerUseCase casos de uso de trabajadores: registro transaccional y login.
type WorkerUseCase struct {
	tx         TxRunner
	workerRepo repository.WorkerRepository
	jwtCfg     JWTConfig
}

// NewWorkerUseCase construye el caso de uso. workerRepo se usa para lecturas fuera de transacción.
func NewWorkerUseCase(tx TxRunner, workerRepo repository.WorkerRepository, jwtCfg JWTConfig) *WorkerUseCase {
	return &WorkerUseCase{tx: tx, workerRepo: workerRepo, jwtCfg: jwtCfg}
}

// Register valida los datos, hashea la contraseña (bcrypt) y registra al trabajador dentro de
// una transacción. Las reglas rechazadas por la base (email o documento repetido, almacén o
// rol inexistente) se devuelven como ErrValidation con el mensaje de la regla.
func (uc *WorkerUseCase) Register(ctx context.Context, in dto.RegisterWorkerRequest) (*dto.TokenResponse, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := dto.Validate(in, MsgFieldsRequired); err != nil {
		return nil, err
	}
	if len(in.Password) > password.MaxBytes {
		return nil, domain.Validation(MsgPasswordTooLong)
	}
	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, domain.WrapError(domain.ErrProcessing, msgRegisterFailed, err)
	}
	worker := &entity.Worker{
		Name:            in.Name,
		PaternalSurname: in.PaternalSurname,
		MaternalSurname: in.MaternalSurname,
		ProfileImage:    in.ProfileImage,
		DocumentType:    in.DocumentType,
		DocumentNumber:  in.DocumentNumber,
		Country:         in.Country,
		Department:      in.Department,
		Province:        in.Province,
		District:        in.District,
		Phone:           in.Phone,
		Address:         in.Address,
		Email:           in.Email,
		PasswordHash:    hash,
		WarehouseID:     in.WarehouseID,
		RoleID:          in.RoleID,
	}

	err = uc.tx.RunWorker(ctx, func(workerRepo repository.WorkerRepository) error {
		id, err := workerRepo.Register(ctx, worker)
		if err != nil {
			return err
		}
		worker.PersonID = id
		return nil
	})
	if err != nil {
		var rule *domain.RuleViolation
		if errors.As(err, &rule) {
			return nil, domain.WrapError(domain.ErrValidation, "los datos ingresados: "+rule.Message, err)
		}
		// Dos registros simultáneos pueden pasar la verificación del procedimiento; el índice
		// único rechaza al segundo.
		if errors.Is(err, domain.ErrDuplicateKey) {
			return nil, domain.WrapError(domain.ErrValidation, "los datos ingresados: "+MsgWorkerDuplicated, err)
		}
		return nil, domain.WrapError(domain.ErrStorage, msgRegisterFailed, err)
	}
	return uc.issue(worker)
}

// Login verifica email y contraseña y devuelve un token nuevo.
func (uc *WorkerUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.TokenResponse, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return nil, domain.Validation(MsgLoginFieldsRequired)
	}
	worker, err := uc.workerRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.WrapError(domain.ErrStorage, msgLoginFailed, err)
	}
	if worker == nil {
		return nil, domain.NotFound(MsgUserNotFound)
	}
	if err := password.Compare(worker.PasswordHash, in.Password); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return nil, domain.NewError(domain.ErrUnauthenticated, MsgBadCredentials)
		}
		return nil, domain.WrapError(domain.ErrProcessing, msgLoginFailed, err)
	}
	return uc.issue(worker)
}

// HasWorkers indica si ya existe al menos un trabajador (lo usa el bootstrap).
func (uc *WorkerUseCase) HasWorkers(ctx context.Context) (bool, error) {
	n, err := uc.workerRepo.Count(ctx)
	if err != nil {
		return false, domain.Storage(err)
	}
	return n > 0, nil
}

func (uc *WorkerUseCase) issue(w *entity.Worker) (*dto.TokenResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Identity{PersonID: w.PersonID, Email: w.Email}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, domain.WrapError(domain.ErrProcessing, "Error al generar el token", err)
	}
	return &dto.TokenResponse{Token: token}, nil
}
