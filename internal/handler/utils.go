package handler

import (
	"github.com/ParthPatil-04/API-demo/internal/model"
	"github.com/gin-gonic/gin"
)

func writeError(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Detail: detail})
}

func toBookResponse(b model.Book) BookResponse {
	return BookResponse{
		ID:               b.ID,
		Title:            b.Title,
		Author:           b.Author,
		FirstPublishYear: b.FirstPublishYear,
	}
}

func (r CreateBookRequest) toModel() model.Book {
	return model.Book{
		Title:            *r.Title.Value,
		Author:           *r.Author.Value,
		FirstPublishYear: r.FirstPublishYear,
	}
}

func (r UpdateBookRequest) toPatch() model.BookPatch {
	return model.BookPatch{
		Title:            r.Title,
		Author:           r.Author,
		FirstPublishYear: r.FirstPublishYear,
	}
}
