package store

import (
	"time"

	_ "github.com/colourlab/go-colourmetric/env"
	"gorm.io/gorm"
)

// Field is one persisted tensor field: the tensors a model produced for one
// sample batch.
type Field struct {
	ID        uint64    `gorm:"primarykey"`
	Model     string    `gorm:"uniqueIndex:idx_model_batch;not null"`
	BatchHash string    `gorm:"uniqueIndex:idx_model_batch;not null"`
	Space     string    `gorm:"not null"`
	Count     int       `gorm:"not null"`
	Tensors   []byte    `gorm:"not null"` // zstd-compressed little-endian float64s
	UpdatedAt time.Time `gorm:"autoUpdateTime;index;not null"`
}

func (f *Field) BeforeCreate(tx *gorm.DB) error {
	f.UpdatedAt = time.Now().UTC()
	return nil
}

func (f *Field) BeforeUpdate(tx *gorm.DB) error {
	f.UpdatedAt = time.Now().UTC()
	return nil
}
