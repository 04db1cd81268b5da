package salary

import "github.com/gaurisankartarasia/emp-2/internal/shared/money"

type CreateComponentRequest struct {
	Name            string  `json:"name" binding:"required,max=120"`
	ComponentType   string  `json:"component_type" binding:"required,oneof=Earning Deduction"`
	CalculationType string  `json:"calculation_type" binding:"required,oneof=fixed percentage"`
	Amount          float64 `json:"amount"`
}

type UpdateComponentRequest struct {
	Name            string  `json:"name" binding:"required,max=120"`
	ComponentType   string  `json:"component_type" binding:"required,oneof=Earning Deduction"`
	CalculationType string  `json:"calculation_type" binding:"required,oneof=fixed percentage"`
	Amount          float64 `json:"amount"`
}

type ComponentResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	ComponentType   string `json:"component_type"`
	CalculationType string `json:"calculation_type"`
	Amount          string `json:"amount"`
}

type StructureComponentInput struct {
	ComponentID string  `json:"component_id" binding:"required,uuid"`
	Amount      float64 `json:"amount"`
}

type UpdateStructureRequest struct {
	Components []StructureComponentInput `json:"components" binding:"required,dive"`
}

type StructureRowResponse struct {
	ComponentID     string `json:"component_id"`
	Name            string `json:"name"`
	ComponentType   string `json:"component_type"`
	CalculationType string `json:"calculation_type"`
	Amount          string `json:"amount"`
}

type BreakdownLineResponse struct {
	Component string `json:"component"`
	Type      string `json:"type"`
	Amount    string `json:"amount"`
}

func mapComponentResponse(component SalaryComponent) ComponentResponse {
	return ComponentResponse{
		ID:              component.ID.String(),
		Name:            component.Name,
		ComponentType:   component.ComponentType,
		CalculationType: component.CalculationType,
		Amount:          money.Format(component.Amount),
	}
}

func MapBreakdownLines(b Breakdown) []BreakdownLineResponse {
	lines := make([]BreakdownLineResponse, len(b.Lines))
	for i, line := range b.Lines {
		lines[i] = BreakdownLineResponse{
			Component: line.Component,
			Type:      line.Type,
			Amount:    money.Format(line.Amount),
		}
	}
	return lines
}
