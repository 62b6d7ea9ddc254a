package dto

// RegisterWorkerRequest datos para registrar un trabajador (persona + credenciales).
type RegisterWorkerRequest struct {
	Name            string  `json:"nombre" validate:"required"`
	PaternalSurname string  `json:"apellido_paterno" validate:"required"`
	MaternalSurname string  `json:"apellido_materno" validate:"required"`
	ProfileImage    *string `json:"imagen_perfil"`
	DocumentType    string  `json:"tipo_documento" validate:"required"`
	DocumentNumber  string  `json:"numero_documento" validate:"required"`
	Country         string  `json:"pais" validate:"required"`
	Department      string  `json:"departamento" validate:"required"`
	Province        string  `json:"provincia" validate:"required"`
	District        string  `json:"distrito" validate:"required"`
	Phone           string  `json:"telefono" validate:"required"`
	Address         string  `json:"direccion" validate:"required"`
	Email           string  `json:"email" validate:"required,email"`
	Password        string  `json:"password" validate:"required,min=6"`
	WarehouseID     int64   `json:"id_almacen" validate:"required,gt=0"`
	RoleID          int64   `json:"id_rol" validate:"required,gt=0"`
}

// LoginRequest credenciales de login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
