package schemas

// Nominal machine states. Status is stored verbatim, so other strings can
// appear and are treated as active.
const (
	StatusRunning = "Running"
	StatusIdle    = "Idle"
	StatusStopped = "Stopped"
)

// Temperature bounds in °C. Every stored temperature stays inside them.
const (
	MinTemperature = 20
	MaxTemperature = 120
)

// Machine is the wire shape shared by REST responses and push events.
type Machine struct {
	ID                int     `json:"id" doc:"External machine identifier" example:"2"`
	Name              string  `json:"name" doc:"Display name" example:"CNC Milling Machine"`
	Status            string  `json:"status" doc:"Running, Idle or Stopped" example:"Idle"`
	Temperature       int     `json:"temperature" doc:"Current temperature in °C, between 20 and 120" example:"65"`
	EnergyConsumption float64 `json:"energyConsumption" doc:"Energy consumption in kWh" example:"800"`
}

type MachineResponse struct {
	Body Machine
}

type ListMachinesResponse struct {
	Body []Machine
}

type GetMachineRequest struct {
	ID int `path:"id" doc:"Machine ID" example:"2"`
}

// UpdateMachineRequest carries the operator-editable fields. Absent fields
// keep their stored values.
type UpdateMachineRequest struct {
	ID int `path:"id" doc:"Machine ID" example:"2"`
	// A missing body is treated like {}.
	Body struct {
		Status            *string  `json:"status,omitempty" required:"false" doc:"New status" example:"Running"`
		EnergyConsumption *float64 `json:"energyConsumption,omitempty" required:"false" doc:"New energy consumption in kWh" example:"500"`
	} `required:"false"`
}

// MachineEvent is the frame sent over the websocket push channel.
type MachineEvent struct {
	Event string  `json:"event"`
	Data  Machine `json:"data"`
}
