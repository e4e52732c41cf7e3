// internal/location/resolver_test.go
package location

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/MehvishSheikh/attendance-webapp/internal/apperr"
	"github.com/MehvishSheikh/attendance-webapp/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Location{}, &models.Session{}))
	return db
}

func newResolver(t *testing.T) (*Resolver, *gorm.DB) {
	db := newTestDB(t)
	return NewResolver(db, 2*time.Second), db
}

func ptr[T any](v T) *T { return &v }

func TestResolveMissingInput(t *testing.T) {
	r, _ := newResolver(t)

	_, err := r.Resolve(context.Background(), ResolveRequest{})
	assert.Equal(t, apperr.LocationMissing, apperr.KindOf(err))
}

func TestResolvePartialGPSIsMissing(t *testing.T) {
	r, _ := newResolver(t)

	_, err := r.Resolve(context.Background(), ResolveRequest{Latitude: ptr(12.5)})
	assert.Equal(t, apperr.LocationMissing, apperr.KindOf(err))
}

func TestResolveInvalidCoordinates(t *testing.T) {
	r, _ := newResolver(t)

	_, err := r.Resolve(context.Background(), ResolveRequest{Latitude: ptr(91.0), Longitude: ptr(0.0)})
	assert.Equal(t, apperr.InvalidCoordinates, apperr.KindOf(err))

	_, err = r.Resolve(context.Background(), ResolveRequest{Latitude: ptr(0.0), Longitude: ptr(-180.5)})
	assert.Equal(t, apperr.InvalidCoordinates, apperr.KindOf(err))
}

func TestResolveGPSSynthesizesDeterministicAddress(t *testing.T) {
	r, _ := newResolver(t)
	req := ResolveRequest{Latitude: ptr(37.422), Longitude: ptr(-122.084)}

	first, err := r.Resolve(context.Background(), req)
	require.NoError(t, err)
	second, err := r.Resolve(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "GPS 37.422000, -122.084000", first.Address)
	assert.Equal(t, first.Address, second.Address)
	assert.Equal(t, models.ProvenanceGPS, first.Provenance)
	assert.Nil(t, first.LocationID)
}

func TestResolveGPSKeepsCallerAddress(t *testing.T) {
	r, _ := newResolver(t)

	loc, err := r.Resolve(context.Background(), ResolveRequest{
		Latitude:  ptr(17.385),
		Longitude: ptr(78.4867),
		Address:   "Near Charminar",
	})
	require.NoError(t, err)
	assert.Equal(t, "Near Charminar", loc.Address)
}

func TestResolveRegistered(t *testing.T) {
	r, db := newResolver(t)
	office := models.Location{Pincode: "500001", Name: "Hyderabad Office"}
	require.NoError(t, db.Create(&office).Error)

	loc, err := r.Resolve(context.Background(), ResolveRequest{LocationID: &office.ID})
	require.NoError(t, err)

	assert.Equal(t, models.ProvenanceRegistered, loc.Provenance)
	assert.Equal(t, "Hyderabad Office", loc.Name)
	assert.Equal(t, "Hyderabad Office (pincode 500001)", loc.Address)
	require.NotNil(t, loc.LocationID)
	assert.Equal(t, office.ID, *loc.LocationID)
	assert.Nil(t, loc.Latitude)
}

func TestResolveRegisteredNotFound(t *testing.T) {
	r, _ := newResolver(t)

	_, err := r.Resolve(context.Background(), ResolveRequest{LocationID: ptr(uint(99))})
	assert.Equal(t, apperr.LocationNotFound, apperr.KindOf(err))
}

func TestResolveRegisteredLookupTimeout(t *testing.T) {
	r, db := newResolver(t)
	office := models.Location{Pincode: "600001", Name: "Chennai Office"}
	require.NoError(t, db.Create(&office).Error)

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	_, err := r.Resolve(ctx, ResolveRequest{LocationID: &office.ID})
	assert.Equal(t, apperr.LookupTimeout, apperr.KindOf(err))
}

func TestResolveRegisteredCallerCancelIsNotTimeout(t *testing.T) {
	r, db := newResolver(t)
	office := models.Location{Pincode: "110001", Name: "Delhi Office"}
	require.NoError(t, db.Create(&office).Error)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Resolve(ctx, ResolveRequest{LocationID: &office.ID})
	require.Error(t, err)
	assert.NotEqual(t, apperr.LookupTimeout, apperr.KindOf(err))
}

func TestGPSTakesPriorityOverRegisteredID(t *testing.T) {
	r, db := newResolver(t)
	office := models.Location{Pincode: "400001", Name: "Mumbai Office"}
	require.NoError(t, db.Create(&office).Error)

	loc, err := r.Resolve(context.Background(), ResolveRequest{
		LocationID: &office.ID,
		Latitude:   ptr(19.076),
		Longitude:  ptr(72.8777),
	})
	require.NoError(t, err)
	assert.Equal(t, models.ProvenanceGPS, loc.Provenance)
}
