package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type TicketCustomer struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

type IssueTicketRequest struct {
	Customer TicketCustomer `json:"customer"`
	MatchID  string         `json:"match_id"`
	Class    string         `json:"class"`
	Seat     string         `json:"seat"`
}

func (req *IssueTicketRequest) Validate() error {
	err := validation.ValidateStruct(
		&req.Customer,
		validation.Field(&req.Customer.ID, validation.Required, validation.Min(1)),
		validation.Field(&req.Customer.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Customer.Age, validation.Required, validation.Min(1), validation.Max(120)),
	)
	if err != nil {
		return err
	}

	return validation.ValidateStruct(
		req,
		validation.Field(&req.MatchID, validation.Required, validation.Length(1, 10)),
		validation.Field(&req.Class, validation.Required, validation.In("general", "vip")),
		validation.Field(&req.Seat, validation.Required, validation.Length(2, 10)),
	)
}

type ValidateTicketRequest struct {
	Code string `json:"code"`
}

func (req *ValidateTicketRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Code, validation.Required, validation.Length(3, 20)),
	)
}
