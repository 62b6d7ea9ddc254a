package entity

// Worker representa a un trabajador (staff) con su persona asociada.
// PasswordHash siempre es un hash bcrypt; la contraseña plana nunca llega a esta estructura.
type Worker struct {
	PersonID        int64
	Name            string
	PaternalSurname string
	MaternalSurname string
	ProfileImage    *string
	DocumentType    string
	DocumentNumber  string
	Country         string
	Department      string
	Province        string
	District        string
	Phone           string
	Address         string
	Email           string
	PasswordHash    string
	WarehouseID     int64
	RoleID          int64
}
