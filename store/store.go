// Package store caches computed tensor fields in a local sqlite database so
// large grids do not have to be recomputed across runs. Fields are keyed by
// model name and a content hash of the sample batch.
package store

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/fnv"
	"math"

	"github.com/colourlab/go-colourmetric/data"
	_ "github.com/colourlab/go-colourmetric/env"
	"github.com/colourlab/go-colourmetric/metric"
	"github.com/colourlab/go-colourmetric/space"
	"gorgonia.org/tensor"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the sqlite store at path.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		Logger:                 logger.Discard,
	})
	if err != nil {
		return nil, errors.Join(errors.New("failed to open tensor field store"), err)
	}
	if err := db.AutoMigrate(&Field{}); err != nil {
		return nil, errors.Join(errors.New("failed to migrate tensor field store"), err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Save persists the tensor field a model produced, replacing any previous
// field for the same model and batch.
func (s *Store) Save(model string, res *metric.Result) error {
	backing := res.Tensors().Data().([]float64)
	raw := make([]byte, 8*len(backing))
	for i, v := range backing {
		binary.LittleEndian.PutUint64(raw[8*i:], math.Float64bits(v))
	}
	field := Field{
		Model:     model,
		BatchHash: batchHash(res.Points()),
		Space:     res.Space().Name(),
		Count:     res.Len(),
		Tensors:   compress(raw),
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "model"}, {Name: "batch_hash"}},
		UpdateAll: true,
	}).Create(&field).Error
}

// Load returns the stored (N,3,3) tensor batch for the model and batch, along
// with the name of its native space. gorm.ErrRecordNotFound signals a miss.
func (s *Store) Load(model string, pts *data.Points) (*tensor.Dense, string, error) {
	var field Field
	err := s.db.Where("model = ? AND batch_hash = ?", model, batchHash(pts)).First(&field).Error
	if err != nil {
		return nil, "", err
	}
	raw, err := decompress(field.Tensors, field.Count)
	if err != nil {
		return nil, "", err
	}
	if len(raw) != 8*9*field.Count {
		return nil, "", fmt.Errorf("tensor field size mismatch: %d bytes for %d points", len(raw), field.Count)
	}
	backing := make([]float64, 9*field.Count)
	for i := range backing {
		backing[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[8*i:]))
	}
	return tensor.New(tensor.WithBacking(backing), tensor.WithShape(field.Count, 3, 3)), field.Space, nil
}

// batchHash fingerprints a sample batch by its XYZ hub coordinates.
func batchHash(pts *data.Points) string {
	h := fnv.New64a()
	var buf [8]byte
	for _, v := range pts.Get(space.NewXYZ()) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
