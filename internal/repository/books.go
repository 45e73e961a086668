package repository

import (
	"context"

	"github.com/ParthPatil-04/API-demo/internal/model"
	"gorm.io/gorm"
)

// BookRepository persists books. Lookups of a missing id return
// gorm.ErrRecordNotFound.
type BookRepository interface {
	Create(ctx context.Context, book *model.Book) error
	FindByID(ctx context.Context, id int64) (*model.Book, error)
	Update(ctx context.Context, id int64, patch model.BookPatch) (*model.Book, error)
	Delete(ctx context.Context, id int64) error
}

type GormBookRepository struct {
	db *gorm.DB
}

func NewGormBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

// Create inserts the book and fills in the id assigned by the store.
func (r *GormBookRepository) Create(ctx context.Context, book *model.Book) error {
	return r.db.WithContext(ctx).Create(book).Error
}

func (r *GormBookRepository) FindByID(ctx context.Context, id int64) (*model.Book, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).First(&book, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// Update applies only the columns present in patch and returns the stored
// row. The read, the write and the re-read share one transaction.
func (r *GormBookRepository) Update(ctx context.Context, id int64, patch model.BookPatch) (*model.Book, error) {
	var book model.Book

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&book, "id = ?", id).Error; err != nil {
			return err
		}

		if patch.IsEmpty() {
			return nil
		}

		if err := tx.Model(&model.Book{}).
			Where("id = ?", id).
			Updates(patch.Columns()).Error; err != nil {

			return err
		}

		book = model.Book{}
		return tx.First(&book, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}

	return &book, nil
}

func (r *GormBookRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&model.Book{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
