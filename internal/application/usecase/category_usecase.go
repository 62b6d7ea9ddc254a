package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/jhoicas/ventaspro-admin-api/internal/application/dto"
	"github.com/jhoicas/ventaspro-admin-api/internal/domain"
	"github.com/jhoicas/ventaspro-admin-api/internal/domain/entity"
	"github.com/jhoicas/ventaspro-admin-api/internal/domain/repository"
	"golang.org/x/text/unicode/norm"
)

// Mensajes de categorías.
const (
	MsgCategoryNotFound      = "Categoría no encontrada"
	MsgCategoryExists        = "La categoría ya existe"
	MsgCategoryNameRequired  = "El nombre de la categoría es obligatorio"
	MsgCategoryHasProducts   = "La categoría tiene productos asociados"
	MsgCategoryCreated       = "Categoría registrada exitosamente"
	MsgCategoryUpdated       = "Categoría actualizada exitosamente"
	MsgCategoryDeleted       = "Categoría eliminada exitosamente"
	maxCategoryNameRuneCount = 100
)

// CategoryUseCase casos de uso CRUD para categorías. El nombre es único.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create registra una categoría nueva.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryRequest) (*dto.CategoryEnvelope, error) {
	name, err := normalizeCategoryName(in.Name)
	if err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return nil, domain.Storage(err)
	}
	if existing != nil {
		return nil, domain.Conflict(MsgCategoryExists)
	}
	category := &entity.Category{Name: name}
	if err := uc.repo.Create(ctx, category); err != nil {
		// Otra petición pudo registrar el mismo nombre entre la consulta y el insert.
		if errors.Is(err, domain.ErrDuplicateKey) {
			return nil, domain.Conflict(MsgCategoryExists)
		}
		return nil, domain.Storage(err)
	}
	return &dto.CategoryEnvelope{Message: MsgCategoryCreated, Category: toCategoryResponse(category)}, nil
}

// List lista todas las categorías.
func (uc *CategoryUseCase) List(ctx context.Context) (*dto.CategoryListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, domain.Storage(err)
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{Categories: items}, nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id int64) (*dto.CategoryEnvelope, error) {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Storage(err)
	}
	if category == nil {
		return nil, domain.NotFound(MsgCategoryNotFound)
	}
	return &dto.CategoryEnvelope{Category: toCategoryResponse(category)}, nil
}

// Update renombra una categoría.
func (uc *CategoryUseCase) Update(ctx context.Context, id int64, in dto.CategoryRequest) (*dto.CategoryEnvelope, error) {
	name, err := normalizeCategoryName(in.Name)
	if err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return nil, domain.Storage(err)
	}
	if existing != nil && existing.ID != id {
		return nil, domain.Conflict(MsgCategoryExists)
	}
	category := &entity.Category{ID: id, Name: name}
	found, err := uc.repo.Update(ctx, category)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			return nil, domain.Conflict(MsgCategoryExists)
		}
		return nil, domain.Storage(err)
	}
	if !found {
		return nil, domain.NotFound(MsgCategoryNotFound)
	}
	return &dto.CategoryEnvelope{Message: MsgCategoryUpdated, Category: toCategoryResponse(category)}, nil
}

// Delete elimina una categoría por ID.
func (uc *CategoryUseCase) Delete(ctx context.Context, id int64) (*dto.MessageResponse, error) {
	found, err := uc.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrForeignKey) {
			return nil, domain.Conflict(MsgCategoryHasProducts)
		}
		return nil, domain.Storage(err)
	}
	if !found {
		return nil, domain.NotFound(MsgCategoryNotFound)
	}
	return &dto.MessageResponse{Message: MsgCategoryDeleted}, nil
}

// normalizeCategoryName recorta espacios y normaliza a NFC, de modo que "Café" escrito con
// tilde combinada y con tilde precompuesta sea el mismo nombre.
func normalizeCategoryName(raw string) (string, error) {
	name := norm.NFC.String(strings.TrimSpace(raw))
	if name == "" {
		return "", domain.Validation(MsgCategoryNameRequired)
	}
	if len([]rune(name)) > maxCategoryNameRuneCount {
		return "", domain.Validation("El nombre de la categoría no puede superar 100 caracteres")
	}
	return name, nil
}

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{ID: c.ID, Name: c.Name}
}
