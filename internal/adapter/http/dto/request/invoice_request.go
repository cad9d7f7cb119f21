package request

import "inhouse/internal/usecase"

type CreateInvoiceRequest struct {
	ProjectID  string `json:"project_id" binding:"required"`
	No         *int   `json:"no"`
	ValidFrom  string `json:"valid_from" binding:"required"`
	ValidUntil string `json:"valid_until" binding:"required"`
}

func (r CreateInvoiceRequest) ToInput() (usecase.CreateInvoiceInput, error) {
	from, err := ParseDate(r.ValidFrom)
	if err != nil {
		return usecase.CreateInvoiceInput{}, err
	}
	until, err := ParseDate(r.ValidUntil)
	if err != nil {
		return usecase.CreateInvoiceInput{}, err
	}
	return usecase.CreateInvoiceInput{
		ProjectID:  r.ProjectID,
		No:         r.No,
		ValidFrom:  from,
		ValidUntil: until,
	}, nil
}
