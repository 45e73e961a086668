package handler

import (
	"errors"
	"net/http"

	"github.com/ParthPatil-04/API-demo/internal/logger"
	"github.com/ParthPatil-04/API-demo/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	detailBookNotFound = "Book not found"
	detailInternal     = "Internal Server Error"
)

// writeStoreError answers a failed repository call: 404 for a missing
// book, 500 for anything else. The store error itself is only logged.
func writeStoreError(c *gin.Context, op string, bookID int64, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		writeError(c, http.StatusNotFound, detailBookNotFound)
		return
	}

	args := []any{
		"op", op,
		"error", err,
		"request_id", middleware.RequestIDFrom(c),
	}
	if bookID != 0 {
		args = append(args, "book_id", bookID)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		args = append(args, "sqlstate", pgErr.Code)
		if pgErr.ConstraintName != "" {
			args = append(args, "constraint", pgErr.ConstraintName)
		}
	}

	logger.Error("store error", args...)
	_ = c.Error(err)

	writeError(c, http.StatusInternalServerError, detailInternal)
}
