package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveLLM(t *testing.T) {
	before := testutil.ToFloat64(llmRequests.WithLabelValues("test", ResultError))

	ObserveLLM("test", 10*time.Millisecond, errors.New("boom"))
	ObserveLLM("test", 10*time.Millisecond, nil)

	assert.Equal(t, before+1, testutil.ToFloat64(llmRequests.WithLabelValues("test", ResultError)))
	assert.GreaterOrEqual(t, testutil.ToFloat64(llmRequests.WithLabelValues("test", ResultOK)), 1.0)
}

func TestObserveMemo(t *testing.T) {
	Recorder{}.ObserveMemo("insight", true)
	Recorder{}.ObserveMemo("insight", false)
	Recorder{}.ObserveMemo("insight", false)

	assert.GreaterOrEqual(t, testutil.ToFloat64(memoLookups.WithLabelValues("insight", "miss")), 2.0)
	assert.GreaterOrEqual(t, testutil.ToFloat64(memoLookups.WithLabelValues("insight", "hit")), 1.0)
}

func TestObserveUpload(t *testing.T) {
	before := testutil.ToFloat64(uploads.WithLabelValues("single", ResultOK))

	Recorder{}.ObserveUpload("single", 12, nil)
	Recorder{}.ObserveUpload("single", 0, errors.New("esquema"))

	assert.Equal(t, before+1, testutil.ToFloat64(uploads.WithLabelValues("single", ResultOK)))
	assert.GreaterOrEqual(t, testutil.ToFloat64(uploads.WithLabelValues("single", ResultError)), 1.0)
}
