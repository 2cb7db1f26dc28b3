package metrics

import (
	"strings"
	"testing"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"

	"portfoliochat/internal/testutil"
)

func TestIntentCollector_Postgres(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()

	testutil.SeedIntentLookup(t, database, "education", 7)

	r := NewRecorder(database)
	r.RecordIntent("education")
	r.RecordIntent("writing")
	r.Wait()

	expected := `
# HELP portfolio_intent_lookups_total Persisted intent hit count across restarts
# TYPE portfolio_intent_lookups_total counter
portfolio_intent_lookups_total{intent="education"} 8
portfolio_intent_lookups_total{intent="writing"} 1
`
	if err := promtest.CollectAndCompare(NewIntentCollector(database), strings.NewReader(expected)); err != nil {
		t.Error(err)
	}
}
