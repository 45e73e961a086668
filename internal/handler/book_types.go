package handler

import (
	"github.com/ParthPatil-04/API-demo/internal/model"
)

// CreateBookRequest keeps title and author as Optional so that an omitted
// field and an explicit null are reported differently.
type CreateBookRequest struct {
	Title            model.Optional[string] `json:"title" swaggertype:"string" validate:"required" example:"Dune"`
	Author           model.Optional[string] `json:"author" swaggertype:"string" validate:"required" example:"Frank Herbert"`
	FirstPublishYear *int                   `json:"first_publish_year" example:"1965"`
}

// UpdateBookRequest is a sparse update. Omitted fields keep their stored
// value; first_publish_year may be sent as null to clear it.
type UpdateBookRequest struct {
	Title            model.Optional[string] `json:"title" swaggertype:"string" example:"Dune Messiah"`
	Author           model.Optional[string] `json:"author" swaggertype:"string" example:"F. Herbert"`
	FirstPublishYear model.Optional[int]    `json:"first_publish_year" swaggertype:"integer" example:"1969"`
}

type BookResponse struct {
	ID               int64  `json:"id" example:"1"`
	Title            string `json:"title" example:"Dune"`
	Author           string `json:"author" example:"Frank Herbert"`
	FirstPublishYear *int   `json:"first_publish_year" example:"1965"`
}

type MessageResponse struct {
	Message string `json:"message" example:"Book deleted"`
}

type ErrorResponse struct {
	Detail string `json:"detail" example:"Book not found"`
}
