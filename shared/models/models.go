package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ID identifies checkouts and messages. Orders and payments use database
// sequences instead.
type ID string

func GenerateUUID() ID {
	return ID(uuid.New().String())
}

// NameBasedID derives a stable UUID from name, so every retry of the same
// logical message carries the same id.
func NameBasedID(name string) ID {
	return ID(uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String())
}

func (id ID) String() string {
	return string(id)
}

// Timestamps are kept in UTC.
type Timestamps struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewTimestamps() Timestamps {
	now := time.Now().UTC()
	return Timestamps{CreatedAt: now, UpdatedAt: now}
}

// Touch returns t with UpdatedAt moved to now.
func (t Timestamps) Touch() Timestamps {
	t.UpdatedAt = time.Now().UTC()
	return t
}

// Version guards concurrent saves of an aggregate. A save only lands when the
// stored version still equals the one the aggregate was loaded with, and
// moves it forward by one.
type Version struct {
	Value int
}

func NewVersion() Version {
	return Version{Value: 1}
}

// Next returns the version the following save will store.
func (v Version) Next() Version {
	return Version{Value: v.Value + 1}
}

// LineTotal returns price * quantity - discount + tax for a single line.
func LineTotal(price decimal.Decimal, quantity int32, discount, tax decimal.Decimal) decimal.Decimal {
	return price.Mul(decimal.NewFromInt32(quantity)).Sub(discount).Add(tax)
}

func Int64Ptr(v int64) *int64 {
	return &v
}

func StringPtr(s string) *string {
	return &s
}
