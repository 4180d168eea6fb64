package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type PurchaseRequest struct {
	Code       string   `json:"code"`
	Restaurant string   `json:"restaurant"`
	Products   []string `json:"products"`
}

func (req *PurchaseRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Code, validation.Required, validation.Length(3, 20)),
		validation.Field(&req.Restaurant, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Products, validation.Required, validation.Length(1, 50)),
	)
}
