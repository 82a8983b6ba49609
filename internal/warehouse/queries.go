// Package warehouse holds the read operations this layer offers over the
// multi-LIMS sequencing warehouse. All functions expect an open session
// obtained via WithSession and never log or retry; storage errors propagate
// to the caller unchanged.
package warehouse

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/seqwell/mlwh/internal/entity"
)

// FindStudyByStudyID returns the study whose LIMS study id equals studyID.
// Exactly one row must match: zero rows yield ErrNotFound and more than one
// yields ErrMultipleMatches.
func FindStudyByStudyID(tx *gorm.DB, studyID string) (*entity.Study, error) {
	var studies []entity.Study
	if err := tx.Where("id_study_lims = ?", studyID).Limit(2).Find(&studies).Error; err != nil {
		return nil, err
	}

	switch len(studies) {
	case 0:
		return nil, fmt.Errorf("study %q: %w", studyID, ErrNotFound)
	case 1:
		return &studies[0], nil
	default:
		return nil, fmt.Errorf("study %q: %w", studyID, ErrMultipleMatches)
	}
}

// FindSampleBySampleID returns the sample whose LIMS sample id equals
// sampleID, under the same strict uniqueness contract as
// FindStudyByStudyID.
func FindSampleBySampleID(tx *gorm.DB, sampleID string) (*entity.Sample, error) {
	var samples []entity.Sample
	if err := tx.Where("id_sample_lims = ?", sampleID).Limit(2).Find(&samples).Error; err != nil {
		return nil, err
	}

	switch len(samples) {
	case 0:
		return nil, fmt.Errorf("sample %q: %w", sampleID, ErrNotFound)
	case 1:
		return &samples[0], nil
	default:
		return nil, fmt.Errorf("sample %q: %w", sampleID, ErrMultipleMatches)
	}
}

// FindConsentWithdrawnSamples returns every sample marked as having consent
// withdrawn. The result is materialized eagerly; withdrawal sets are small
// relative to the warehouse.
func FindConsentWithdrawnSamples(tx *gorm.DB) ([]entity.Sample, error) {
	var samples []entity.Sample
	if err := tx.Where("consent_withdrawn = ?", 1).Find(&samples).Error; err != nil {
		return nil, err
	}
	return samples, nil
}

// FindFlowcellsBySampleID returns the Illumina flowcell entries recorded for
// a sample, newest position first within a flowcell. An unknown sample id
// yields an empty slice, not an error.
func FindFlowcellsBySampleID(tx *gorm.DB, sampleID string) ([]entity.IseqFlowcell, error) {
	var flowcells []entity.IseqFlowcell
	err := tx.
		Joins("JOIN sample ON iseq_flowcell.id_sample_tmp = sample.id_sample_tmp").
		Where("sample.id_sample_lims = ?", sampleID).
		Order("iseq_flowcell.id_flowcell_lims, iseq_flowcell.position").
		Find(&flowcells).Error
	if err != nil {
		return nil, err
	}
	return flowcells, nil
}

// FindProductLocations returns the iRODS location rows recorded for a
// sequencing product. The product id is a soft key shared with the platform
// metrics tables, not a foreign key, so a product with no recorded location
// yields an empty slice rather than ErrNotFound.
func FindProductLocations(tx *gorm.DB, productID string) ([]entity.SeqProductIrodsLocations, error) {
	var locations []entity.SeqProductIrodsLocations
	err := tx.
		Where("id_product = ?", productID).
		Order("irods_root_collection").
		Find(&locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}

// FindPacBioRunWellMetrics returns the well metrics row for one
// (run, well, plate) combination. The triple is covered by a unique index,
// so the strict uniqueness contract of the point lookups applies. A nil
// plateNumber matches rows where plate_number is NULL.
func FindPacBioRunWellMetrics(tx *gorm.DB, runName, wellLabel string, plateNumber *int) (*entity.PacBioRunWellMetrics, error) {
	q := tx.Where("pac_bio_run_name = ? AND well_label = ?", runName, wellLabel)
	if plateNumber != nil {
		q = q.Where("plate_number = ?", *plateNumber)
	} else {
		q = q.Where("plate_number IS NULL")
	}

	var metrics []entity.PacBioRunWellMetrics
	if err := q.Limit(2).Find(&metrics).Error; err != nil {
		return nil, err
	}

	switch len(metrics) {
	case 0:
		return nil, fmt.Errorf("run %q well %q: %w", runName, wellLabel, ErrNotFound)
	case 1:
		return &metrics[0], nil
	default:
		return nil, fmt.Errorf("run %q well %q: %w", runName, wellLabel, ErrMultipleMatches)
	}
}
