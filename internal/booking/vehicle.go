package booking

type VehicleStatus string

const (
	VehicleAvailable   VehicleStatus = "available"
	VehicleReserved    VehicleStatus = "reserved"
	VehicleRented      VehicleStatus = "rented"
	VehicleMaintenance VehicleStatus = "maintenance"
)

func (s VehicleStatus) valid() bool {
	switch s {
	case VehicleAvailable, VehicleReserved, VehicleRented, VehicleMaintenance:
		return true
	}
	return false
}

// Vehicle is one rentable unit of the fleet. IDs compare
// case-insensitively; plate numbers are unique across the fleet.
type Vehicle struct {
	ID     string
	Model  string
	Plate  string
	Status VehicleStatus
}
