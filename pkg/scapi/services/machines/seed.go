package machines

import "github.com/quatton/scitech/pkg/scapi/schemas"

// SeedMachines is the fleet inserted into an empty store at startup.
func SeedMachines() []schemas.Machine {
	return []schemas.Machine{
		{ID: 1, Name: "Lathe Machine", Status: schemas.StatusRunning, Temperature: 75, EnergyConsumption: 1200},
		{ID: 2, Name: "CNC Milling Machine", Status: schemas.StatusIdle, Temperature: 65, EnergyConsumption: 800},
		{ID: 3, Name: "Injection Molding Machine", Status: schemas.StatusStopped, Temperature: 85, EnergyConsumption: 1500},
		{ID: 4, Name: "AC Machine", Status: schemas.StatusStopped, Temperature: 85, EnergyConsumption: 2000},
		{ID: 5, Name: "Grinding Machine", Status: schemas.StatusStopped, Temperature: 85, EnergyConsumption: 1000},
	}
}
