package entity

import (
	"database/sql/driver"
	"errors"
	"fmt"
)

// ErrInvalidPlatform is returned when a Platform value outside the closed
// set reaches the storage boundary.
var ErrInvalidPlatform = errors.New("invalid sequencing platform")

// Platform is the sequencing platform recorded in
// seq_product_irods_locations.seq_platform_name. The set is closed; any
// other value is rejected before it reaches the database.
type Platform string

const (
	PlatformIllumina Platform = "Illumina"
	PlatformONT      Platform = "ONT"
	PlatformPacBio   Platform = "PacBio"
)

func (p Platform) Valid() bool {
	switch p {
	case PlatformIllumina, PlatformONT, PlatformPacBio:
		return true
	}
	return false
}

func (p Platform) String() string {
	return string(p)
}

// Value implements driver.Valuer, rejecting values outside the enum.
func (p Platform) Value() (driver.Value, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPlatform, string(p))
	}
	return string(p), nil
}

// Scan implements sql.Scanner.
func (p *Platform) Scan(src interface{}) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into Platform", src)
	}

	candidate := Platform(s)
	if !candidate.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPlatform, s)
	}
	*p = candidate
	return nil
}
