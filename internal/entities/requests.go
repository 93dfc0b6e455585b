package entities

type BookingRequest struct {
	VehicleID string `json:"vehicle_id"`
	UserID    string `json:"user_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Days      int    `json:"days"` // used instead of dates when start_date is empty
	Policy    string `json:"policy"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type CancelRequest struct {
	VehicleID string `json:"vehicle_id"`
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type PaymentRequest struct {
	VehicleID string `json:"vehicle_id"`
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
}

type StatusUpdateRequest struct {
	VehicleID string `json:"vehicle_id"`
	UserID    string `json:"user_id"`
	Status    string `json:"status"`
}

type VehicleRequest struct {
	ID    string `json:"id"`
	Model string `json:"model"`
	Plate string `json:"plate"`
}

type VehicleStatusRequest struct {
	Status string `json:"status"`
}

type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
