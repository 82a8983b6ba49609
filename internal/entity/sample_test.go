package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleUUID(t *testing.T) {
	want := uuid.NewString()
	s := Sample{UUIDSampleLims: want}

	got, err := s.UUID()
	require.NoError(t, err)
	assert.Equal(t, want, got.String())

	s.UUIDSampleLims = "not-a-uuid"
	_, err = s.UUID()
	assert.Error(t, err)
}

func TestTableNames(t *testing.T) {
	// The schema is owned by the external warehouse; table names are part
	// of its wire contract.
	assert.Equal(t, "sample", Sample{}.TableName())
	assert.Equal(t, "study", Study{}.TableName())
	assert.Equal(t, "iseq_flowcell", IseqFlowcell{}.TableName())
	assert.Equal(t, "iseq_product_metrics", IseqProductMetrics{}.TableName())
	assert.Equal(t, "oseq_flowcell", OseqFlowcell{}.TableName())
	assert.Equal(t, "pac_bio_run", PacBioRun{}.TableName())
	assert.Equal(t, "pac_bio_run_well_metrics", PacBioRunWellMetrics{}.TableName())
	assert.Equal(t, "pac_bio_product_metrics", PacBioProductMetrics{}.TableName())
	assert.Equal(t, "seq_product_irods_locations", SeqProductIrodsLocations{}.TableName())
}
