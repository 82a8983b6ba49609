package warehouse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqwell/mlwh/internal/entity"
)

func TestFindFlowcellsBySampleID(t *testing.T) {
	db := testDB(t)
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	sample := newSample(1, now, now)
	other := newSample(2, now, now)
	require.NoError(t, db.Create(&sample).Error)
	require.NoError(t, db.Create(&other).Error)

	study := newStudy(1, now, now)
	require.NoError(t, db.Create(&study).Error)

	for pos := 2; pos >= 1; pos-- {
		fc := entity.IseqFlowcell{
			LastUpdated:    now,
			RecordedAt:     now,
			IDSampleTmp:    sample.IDSampleTmp,
			IDLims:         "SQSCP",
			IDFlowcellLims: "FC0001",
			Position:       pos,
			EntityType:     "library_indexed",
			EntityIDLims:   "E1",
			IDPoolLims:     "P1",
			IDStudyTmp:     ptr(study.IDStudyTmp),
			TagIndex:       ptr(pos),
		}
		require.NoError(t, db.Create(&fc).Error)
	}
	// A flowcell for another sample must not appear.
	stray := entity.IseqFlowcell{
		LastUpdated:    now,
		RecordedAt:     now,
		IDSampleTmp:    other.IDSampleTmp,
		IDLims:         "SQSCP",
		IDFlowcellLims: "FC0002",
		Position:       1,
		EntityType:     "library_indexed",
		EntityIDLims:   "E2",
		IDPoolLims:     "P2",
	}
	require.NoError(t, db.Create(&stray).Error)

	flowcells, err := FindFlowcellsBySampleID(db, sample.IDSampleLims)
	require.NoError(t, err)
	require.Len(t, flowcells, 2)
	assert.Equal(t, 1, flowcells[0].Position)
	assert.Equal(t, 2, flowcells[1].Position)
	for _, fc := range flowcells {
		assert.Equal(t, sample.IDSampleTmp, fc.IDSampleTmp)
	}

	none, err := FindFlowcellsBySampleID(db, "no_such_sample")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFindProductLocations(t *testing.T) {
	db := testDB(t)
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	const productID = "31a3d460bb3c7d98845187c716a30db81c44b615"

	metrics := entity.IseqProductMetrics{
		IDIseqProduct: productID,
		LastChanged:   ptr(now),
		IDRun:         ptr(12345),
		Position:      ptr(1),
		TagIndex:      ptr(4),
	}
	require.NoError(t, db.Create(&metrics).Error)

	primary := entity.SeqProductIrodsLocations{
		Created:               ptr(now),
		IDProduct:             productID,
		SeqPlatformName:       entity.PlatformIllumina,
		PipelineName:          "npg-prod",
		IrodsRootCollection:   "/seq/12345",
		IrodsDataRelativePath: ptr("12345_1#4.cram"),
	}
	archived := entity.SeqProductIrodsLocations{
		Created:             ptr(now),
		IDProduct:           productID,
		SeqPlatformName:     entity.PlatformIllumina,
		PipelineName:        "npg-prod-alt",
		IrodsRootCollection: "/archive/12345",
	}
	unrelated := entity.SeqProductIrodsLocations{
		Created:             ptr(now),
		IDProduct:           "0000000000000000000000000000000000000000",
		SeqPlatformName:     entity.PlatformONT,
		PipelineName:        "ont-prod",
		IrodsRootCollection: "/ont/1",
	}
	for _, loc := range []*entity.SeqProductIrodsLocations{&primary, &archived, &unrelated} {
		require.NoError(t, db.Create(loc).Error)
	}

	locations, err := FindProductLocations(db, productID)
	require.NoError(t, err)
	require.Len(t, locations, 2)
	assert.Equal(t, "/archive/12345", locations[0].IrodsRootCollection)
	assert.Equal(t, "/seq/12345", locations[1].IrodsRootCollection)

	// A product with metrics but no recorded location is not an error.
	none, err := FindProductLocations(db, "ffffffffffffffffffffffffffffffffffffffff")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFindPacBioRunWellMetrics(t *testing.T) {
	db := testDB(t)
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	withPlate := entity.PacBioRunWellMetrics{
		LastChanged:     ptr(now),
		IDPacBioProduct: "aaaa000011112222333344445555666677778888",
		PacBioRunName:   "TRACTION-RUN-1",
		WellLabel:       "A1",
		PlateNumber:     ptr(1),
	}
	withoutPlate := entity.PacBioRunWellMetrics{
		LastChanged:     ptr(now),
		IDPacBioProduct: "bbbb000011112222333344445555666677778888",
		PacBioRunName:   "TRACTION-RUN-1",
		WellLabel:       "B1",
	}
	require.NoError(t, db.Create(&withPlate).Error)
	require.NoError(t, db.Create(&withoutPlate).Error)

	got, err := FindPacBioRunWellMetrics(db, "TRACTION-RUN-1", "A1", ptr(1))
	require.NoError(t, err)
	assert.Equal(t, withPlate.IDPacBioProduct, got.IDPacBioProduct)

	got, err = FindPacBioRunWellMetrics(db, "TRACTION-RUN-1", "B1", nil)
	require.NoError(t, err)
	assert.Equal(t, withoutPlate.IDPacBioProduct, got.IDPacBioProduct)

	_, err = FindPacBioRunWellMetrics(db, "TRACTION-RUN-1", "H12", ptr(1))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPlatformEnumRejectedAtStorageBoundary(t *testing.T) {
	db := testDB(t)
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	loc := entity.SeqProductIrodsLocations{
		Created:             ptr(now),
		IDProduct:           "cccc000011112222333344445555666677778888",
		SeqPlatformName:     entity.Platform("Nanopore"),
		PipelineName:        "ont-prod",
		IrodsRootCollection: "/ont/2",
	}
	err := db.Create(&loc).Error
	require.Error(t, err)
	assert.True(t, IsConstraintViolation(err), "expected a constraint violation, got %v", err)

	var count int64
	require.NoError(t, db.Model(&entity.SeqProductIrodsLocations{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUniqueProductIDEnforced(t *testing.T) {
	db := testDB(t)
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	first := entity.IseqProductMetrics{IDIseqProduct: "dddd0000111122223333", LastChanged: ptr(now)}
	require.NoError(t, db.Create(&first).Error)

	dup := entity.IseqProductMetrics{IDIseqProduct: "dddd0000111122223333", LastChanged: ptr(now)}
	err := db.Create(&dup).Error
	require.Error(t, err)
	assert.True(t, IsConstraintViolation(err), "expected a constraint violation, got %v", err)
}
