// Package entity mirrors the tables of the multi-LIMS sequencing warehouse.
// The schema is owned by the external warehouse feeds; nothing here creates,
// migrates or mutates it in production.
package entity

// All returns one instance of every warehouse model, in dependency order.
// Used to materialize the schema in tests.
func All() []interface{} {
	return []interface{}{
		&Sample{},
		&Study{},
		&IseqFlowcell{},
		&IseqProductMetrics{},
		&OseqFlowcell{},
		&PacBioRun{},
		&PacBioRunWellMetrics{},
		&PacBioProductMetrics{},
		&SeqProductIrodsLocations{},
	}
}
