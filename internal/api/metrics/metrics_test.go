package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/practicum/employee-model/internal/core/domain"
)

func TestRecorder_IncrementsCollectors(t *testing.T) {
	r := NewRecorder()

	before := testutil.ToFloat64(HiresRejectedTotal.WithLabelValues("invalid_age"))
	r.HireRejected("invalid_age")
	if got := testutil.ToFloat64(HiresRejectedTotal.WithLabelValues("invalid_age")); got != before+1 {
		t.Errorf("hires rejected: expected %v, got %v", before+1, got)
	}

	before = testutil.ToFloat64(PremiumsGrantedTotal.WithLabelValues("manager"))
	r.PremiumGranted(domain.KindManager)
	if got := testutil.ToFloat64(PremiumsGrantedTotal.WithLabelValues("manager")); got != before+1 {
		t.Errorf("premiums: expected %v, got %v", before+1, got)
	}

	before = testutil.ToFloat64(FraudSuspicionsTotal)
	r.FraudSuspected()
	if got := testutil.ToFloat64(FraudSuspicionsTotal); got != before+1 {
		t.Errorf("fraud: expected %v, got %v", before+1, got)
	}

	before = testutil.ToFloat64(CurrencyChangesTotal.WithLabelValues("rejected"))
	r.CurrencyChanged("rejected")
	if got := testutil.ToFloat64(CurrencyChangesTotal.WithLabelValues("rejected")); got != before+1 {
		t.Errorf("currency changes: expected %v, got %v", before+1, got)
	}
}
