package dto

type SendEmailRequest struct {
	To      []string `json:"to" validate:"required,min=1,dive,required,email"`
	Subject string   `json:"subject" validate:"required,max=200"`
	Body    string   `json:"body" validate:"required"`
}
