package handlers

import (
	"github.com/go-playground/validator/v10"
)

// PayloadValidator plugs validator/v10 into echo (e.Validator). Request
// structs declare their rules with `validate` tags.
type PayloadValidator struct {
	v *validator.Validate
}

func NewPayloadValidator() *PayloadValidator {
	return &PayloadValidator{v: validator.New()}
}

func (p *PayloadValidator) Validate(i any) error {
	return p.v.Struct(i)
}
