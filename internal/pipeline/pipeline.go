package pipeline

import (
	"fmt"

	"github.com/op/go-logging"

	"salon-analytics/internal/model"
)

var log = logging.MustGetLogger("pipeline")

// Process runs the full analytics computation over a record set, optionally
// narrowed by filters. It recomputes everything on every call; there is no
// incremental update.
//
// Empty input yields the zero-valued result with status "empty-input". A
// filter set that matches nothing yields the zero-valued result with status
// "ok" (a successful empty aggregation). A recovered failure inside the
// aggregation yields the zero-valued result with status "failed" and a
// non-nil error, so callers can render "no data" instead of a stack trace.
func Process(records []model.Record, filters *model.FilterState) (result *model.AnalyticsResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("analytics aggregation failed: %v", r)
			result = emptyResult()
			result.Status = model.StatusFailed
			err = fmt.Errorf("analytics aggregation failed: %v", r)
		}
	}()

	if len(records) == 0 {
		result = emptyResult()
		result.Status = model.StatusEmptyInput
		return result, nil
	}

	if filters != nil {
		records = ApplyFilters(records, filters)
	}
	result = aggregate(records)
	result.Status = model.StatusOK
	return result, nil
}
