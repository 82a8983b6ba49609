package warehouse

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/seqwell/mlwh/internal/entity"
)

const (
	// sqlChunkSize bounds how many ids one round trip to the warehouse may
	// return; the iterators fetch further chunks on demand.
	sqlChunkSize = 1000

	// recentWindow is the lookback used to exclude freshly created rows
	// from the "updated" queries. The warehouse feed stamps created and
	// recorded_at together on first insert, so without this exclusion a
	// row inserted just before the window start would be reported as an
	// update. One day matches the expected feed latency; do not change it
	// without confirming upstream feed timing.
	recentWindow = 24 * time.Hour
)

// FindUpdatedSamples returns an iterator over the LIMS sample ids of samples
// whose recorded_at falls within [since, until], excluding rows created
// within recentWindow before since. Ids are produced in non-decreasing
// recorded_at order, so callers may persist until as a watermark and resume
// from it.
func FindUpdatedSamples(tx *gorm.DB, since, until time.Time) *IDIterator {
	return newIDIterator(tx, &entity.Sample{}, "id_sample_lims", "id_sample_tmp", since, until)
}

// FindUpdatedStudies is the study counterpart of FindUpdatedSamples, keyed
// on LIMS study ids.
func FindUpdatedStudies(tx *gorm.DB, since, until time.Time) *IDIterator {
	return newIDIterator(tx, &entity.Study{}, "id_study_lims", "id_study_tmp", since, until)
}

// IDIterator is a finite, one-pass cursor over LIMS identifiers. Rows are
// fetched from the warehouse in chunks of sqlChunkSize, keyed on
// (recorded_at, pk) so a chunk boundary inside a run of equal timestamps
// neither skips nor repeats ids.
//
//	it := warehouse.FindUpdatedSamples(tx, since, until)
//	for it.Next() {
//		process(it.ID())
//	}
//	if err := it.Err(); err != nil { ... }
type IDIterator struct {
	tx       *gorm.DB
	model    interface{}
	idColumn string
	pkColumn string

	since  time.Time
	until  time.Time
	cutoff time.Time

	batch   []updatedRow
	pos     int
	started bool
	done    bool
	err     error

	current        string
	lastRecordedAt time.Time
	lastPK         int
}

type updatedRow struct {
	LimsID     string    `gorm:"column:lims_id"`
	RecordedAt time.Time `gorm:"column:recorded_at"`
	PK         int       `gorm:"column:pk"`
}

func newIDIterator(tx *gorm.DB, model interface{}, idColumn, pkColumn string, since, until time.Time) *IDIterator {
	return &IDIterator{
		tx:       tx,
		model:    model,
		idColumn: idColumn,
		pkColumn: pkColumn,
		since:    since,
		until:    until,
		cutoff:   since.Add(-recentWindow),
	}
}

// Next advances the iterator, fetching the next chunk from the warehouse
// when the current one is exhausted. It returns false at the end of the
// result set or on error; check Err afterwards.
func (it *IDIterator) Next() bool {
	if it.err != nil || it.done {
		return false
	}

	if it.pos >= len(it.batch) {
		// A short chunk means the previous fetch drained the result set.
		if it.started && len(it.batch) < sqlChunkSize {
			it.done = true
			return false
		}
		if !it.fetch() {
			it.done = true
			return false
		}
	}

	row := it.batch[it.pos]
	it.pos++
	it.current = row.LimsID
	it.lastRecordedAt = row.RecordedAt
	it.lastPK = row.PK
	return true
}

// ID returns the identifier most recently yielded by Next.
func (it *IDIterator) ID() string {
	return it.current
}

// Err returns the first error encountered while fetching, if any.
func (it *IDIterator) Err() error {
	return it.err
}

func (it *IDIterator) fetch() bool {
	rows := make([]updatedRow, 0, sqlChunkSize)

	q := it.tx.Model(it.model).
		Select(fmt.Sprintf("%s AS lims_id, recorded_at, %s AS pk", it.idColumn, it.pkColumn)).
		Where("recorded_at BETWEEN ? AND ?", it.since, it.until).
		Where("NOT (created BETWEEN ? AND ?)", it.cutoff, it.since).
		Order(fmt.Sprintf("recorded_at, %s", it.pkColumn)).
		Limit(sqlChunkSize)

	if it.started {
		q = q.Where(
			fmt.Sprintf("recorded_at > ? OR (recorded_at = ? AND %s > ?)", it.pkColumn),
			it.lastRecordedAt, it.lastRecordedAt, it.lastPK,
		)
	}

	if err := q.Scan(&rows).Error; err != nil {
		it.err = err
		return false
	}

	it.started = true
	it.batch = rows
	it.pos = 0
	return len(rows) > 0
}
