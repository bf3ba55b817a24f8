package routes

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/quatton/scitech/pkg/scapi/schemas"
	"github.com/quatton/scitech/pkg/scapi/services"
	"github.com/quatton/scitech/pkg/scapi/services/machines"
)

const updateMachineDoc = "Sets status and/or energy consumption, then broadcasts the updated machine. " +
	"A missing body is treated as {}. A non-integer id is rejected with 422; an unknown id is 404."

func RegisterMachines(api huma.API, svcs *services.Services) {
	huma.Register(api, huma.Operation{
		OperationID: "list-machines",
		Method:      http.MethodGet,
		Path:        "/machines",
		Summary:     "List machines",
		Description: "Returns every machine ordered by ascending id",
		Tags:        []string{TagMachines.String()},
		Security:    BearerAuth,
	}, func(ctx context.Context, input *struct{}) (*schemas.ListMachinesResponse, error) {
		if svcs.IAM.Get(ctx) == nil {
			return nil, huma.Error401Unauthorized("Authentication required")
		}

		all, err := svcs.Machines.List(ctx)
		if err != nil {
			return nil, machineError(err)
		}
		return &schemas.ListMachinesResponse{Body: all}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-machine",
		Method:      http.MethodGet,
		Path:        "/machines/{id}",
		Summary:     "Get a machine",
		Description: "Returns one machine. A non-integer id is rejected with 422 before lookup; an unknown id is 404.",
		Tags:        []string{TagMachines.String()},
		Security:    BearerAuth,
	}, func(ctx context.Context, input *schemas.GetMachineRequest) (*schemas.MachineResponse, error) {
		if svcs.IAM.Get(ctx) == nil {
			return nil, huma.Error401Unauthorized("Authentication required")
		}

		m, err := svcs.Machines.Get(ctx, input.ID)
		if err != nil {
			return nil, machineError(err)
		}
		return &schemas.MachineResponse{Body: *m}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-machine",
		Method:      http.MethodPost,
		Path:        "/machines/{id}/update",
		Summary:     "Update a machine",
		Description: updateMachineDoc,
		Tags:        []string{TagMachines.String()},
		Security:    BearerAuth,
	}, func(ctx context.Context, input *schemas.UpdateMachineRequest) (*schemas.MachineResponse, error) {
		if svcs.IAM.Get(ctx) == nil {
			return nil, huma.Error401Unauthorized("Authentication required")
		}

		m, err := svcs.Machines.Update(ctx, input.ID, machines.UpdateFields{
			Status:            input.Body.Status,
			EnergyConsumption: input.Body.EnergyConsumption,
		})
		if err != nil {
			return nil, machineError(err)
		}
		return &schemas.MachineResponse{Body: *m}, nil
	})
}

func machineError(err error) error {
	if errors.Is(err, machines.ErrNotFound) {
		return huma.Error404NotFound(err.Error())
	}
	return huma.Error500InternalServerError("machine store failure", err)
}
