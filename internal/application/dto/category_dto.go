package dto

// CategoryRequest entrada para registrar o renombrar una categoría.
type CategoryRequest struct {
	Name string `json:"nombre_categoria" form:"nombre_categoria"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"nombre_categoria"`
}

// CategoryEnvelope envuelve una categoría, con mensaje en las operaciones de escritura.
type CategoryEnvelope struct {
	Message  string           `json:"message,omitempty"`
	Category CategoryResponse `json:"categoria"`
}

// CategoryListResponse listado de categorías.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categorias"`
}
