package model

type Book struct {
	ID               int64  `gorm:"primaryKey;autoIncrement"`
	Title            string `gorm:"not null;index"`
	Author           string `gorm:"not null;index"`
	FirstPublishYear *int
}

// BookPatch holds the fields of a partial update. Fields that are not Set
// are left untouched in the store.
type BookPatch struct {
	Title            Optional[string]
	Author           Optional[string]
	FirstPublishYear Optional[int]
}

// Columns returns the column assignments for the fields present in the
// patch, keyed by column name. An explicitly null field maps to nil.
func (p BookPatch) Columns() map[string]any {
	cols := make(map[string]any, 3)

	if p.Title.Set {
		cols["title"] = p.Title.Interface()
	}
	if p.Author.Set {
		cols["author"] = p.Author.Interface()
	}
	if p.FirstPublishYear.Set {
		cols["first_publish_year"] = p.FirstPublishYear.Interface()
	}

	return cols
}

func (p BookPatch) IsEmpty() bool {
	return !p.Title.Set && !p.Author.Set && !p.FirstPublishYear.Set
}
