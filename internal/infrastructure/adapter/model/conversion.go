package model

import (
	"math"
	"time"

	"github.com/amirhossein-jamali/timeconv/internal/domain/entity"
	"github.com/amirhossein-jamali/timeconv/pkg/timedata"
)

// Conversion represents the database model for a recorded conversion
type Conversion struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	Unit      string    `gorm:"not null;size:2;index:idx_conversions_unit"`
	Quantity  float64   `gorm:"not null"`
	Decimals  int       `gorm:"not null"`
	Ms        float64   `gorm:"column:ms;not null"`
	S         float64   `gorm:"column:s;not null"`
	M         float64   `gorm:"column:m;not null"`
	H         float64   `gorm:"column:h;not null"`
	D         float64   `gorm:"column:d;not null"`
	W         float64   `gorm:"column:w;not null"`
	Y         float64   `gorm:"column:y;not null"`
	CreatedAt time.Time `gorm:"not null;index:idx_conversions_created_at"`
}

// TableName specifies the table name for Conversion
func (Conversion) TableName() string {
	return "conversions"
}

// NewConversionModel maps a domain conversion to its database model
func NewConversionModel(c *entity.Conversion) *Conversion {
	return &Conversion{
		ID:        c.ID,
		Unit:      string(c.Unit),
		Quantity:  c.Quantity,
		Decimals:  c.Decimals,
		Ms:        c.Result.Ms,
		S:         c.Result.S,
		M:         c.Result.M,
		H:         c.Result.H,
		D:         c.Result.D,
		W:         c.Result.W,
		Y:         c.Result.Y,
		CreatedAt: c.CreatedAt,
	}
}

// ToEntity maps the database model back to a domain conversion.
// Stores such as sqlite read -0 back as 0, so zero fields of a negative
// quantity get their sign restored.
func (c *Conversion) ToEntity() *entity.Conversion {
	result := timedata.TimeData{
		Ms: c.Ms,
		S:  c.S,
		M:  c.M,
		H:  c.H,
		D:  c.D,
		W:  c.W,
		Y:  c.Y,
	}
	if c.Quantity < 0 {
		for _, f := range []*float64{&result.Ms, &result.S, &result.M, &result.H, &result.D, &result.W, &result.Y} {
			if *f == 0 {
				*f = math.Copysign(0, -1)
			}
		}
	}

	return &entity.Conversion{
		ID:        c.ID,
		Unit:      timedata.Unit(c.Unit),
		Quantity:  c.Quantity,
		Decimals:  c.Decimals,
		Result:    result,
		CreatedAt: c.CreatedAt.UTC(),
	}
}

// UnitCount is a row of the per-unit aggregation
type UnitCount struct {
	Unit  string
	Count int64
}
