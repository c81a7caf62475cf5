package customer

type UpsertInput struct {
	Name  string `json:"name" validate:"required,max=255"`
	Phone string `json:"phone_number" validate:"omitempty,max=50"`
	Email string `json:"email" validate:"omitempty,email,max=254"`
}

type SyncInput struct {
	ModuCustomerID string `json:"modu_customer_id" validate:"required,max=100"`
}

type VehicleInput struct {
	Model       string `json:"model" validate:"required,max=255"`
	PlateNumber string `json:"plate_number" validate:"omitempty,max=20"`
}

type InsurerInput struct {
	Name string `json:"name" validate:"required,max=255"`
}
