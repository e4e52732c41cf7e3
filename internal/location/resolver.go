// internal/location/resolver.go
package location

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/MehvishSheikh/attendance-webapp/internal/apperr"
	"github.com/MehvishSheikh/attendance-webapp/internal/models"
)

// ResolveRequest is the tagged check-in input: a registered location id, or a
// raw GPS fix with an optional caller-supplied address.
type ResolveRequest struct {
	LocationID *uint
	Latitude   *float64
	Longitude  *float64
	Address    string
}

// Resolver turns a check-in request into a validated, provenance-tagged
// location. The registered-catalog lookup is the only call here that can
// touch slow storage, so it runs under a bounded timeout.
type Resolver struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewResolver(db *gorm.DB, timeout time.Duration) *Resolver {
	return &Resolver{db: db, timeout: timeout}
}

// Resolve handles the two input modes exclusively: GPS wins only when both
// coordinates are explicitly supplied, otherwise the registered id is looked
// up. A registered-lookup failure is never silently replaced by GPS data.
func (r *Resolver) Resolve(ctx context.Context, req ResolveRequest) (*models.ResolvedLocation, error) {
	switch {
	case req.Latitude != nil && req.Longitude != nil:
		return resolveGPS(*req.Latitude, *req.Longitude, req.Address)
	case req.LocationID != nil:
		return r.resolveRegistered(ctx, *req.LocationID)
	default:
		return nil, apperr.New(apperr.LocationMissing, "either location_id or both latitude and longitude are required")
	}
}

func resolveGPS(lat, lng float64, address string) (*models.ResolvedLocation, error) {
	if lat < -90 || lat > 90 {
		return nil, apperr.Newf(apperr.InvalidCoordinates, "latitude %v out of range [-90, 90]", lat)
	}
	if lng < -180 || lng > 180 {
		return nil, apperr.Newf(apperr.InvalidCoordinates, "longitude %v out of range [-180, 180]", lng)
	}
	if address == "" {
		address = SynthesizeAddress(lat, lng)
	}
	return &models.ResolvedLocation{
		Latitude:   &lat,
		Longitude:  &lng,
		Address:    address,
		Provenance: models.ProvenanceGPS,
	}, nil
}

func (r *Resolver) resolveRegistered(ctx context.Context, id uint) (*models.ResolvedLocation, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var loc models.Location
	err := r.db.WithContext(ctx).First(&loc, id).Error
	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, apperr.Newf(apperr.LocationNotFound, "location %d is not registered", id)
	case errors.Is(err, context.DeadlineExceeded):
		return nil, apperr.Wrap(apperr.LookupTimeout, "registered location lookup timed out", err)
	default:
		return nil, apperr.Storage("location lookup", err)
	}

	return &models.ResolvedLocation{
		LocationID: &loc.ID,
		Name:       loc.Name,
		Pincode:    loc.Pincode,
		Address:    fmt.Sprintf("%s (pincode %s)", loc.Name, loc.Pincode),
		Provenance: models.ProvenanceRegistered,
	}, nil
}

// SynthesizeAddress renders a GPS fix as a stable human-readable string.
// Six decimal places, same input always yields the same text.
func SynthesizeAddress(lat, lng float64) string {
	return fmt.Sprintf("GPS %.6f, %.6f", lat, lng)
}
