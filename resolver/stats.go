package resolver

import (
	"fmt"
)

// Stats counts resolver activity. All counters are cumulative from NewResolver.
type Stats struct {
	Queries   int // Calls to Query
	Attempts  int // Attempts made across all queries
	Exchanges int // Individual server exchanges, including TCP retries
	Truncated int // UDP replies with TC set which were retried over TCP
	Answered  int // Queries which returned a RecordSet
	Absent    int // Queries which returned nothing after exhausting attempts

	Lookups        int // Calls to LookupIPv4
	LookupFailures int
}

func (t *Stats) add(from *Stats) {
	t.Queries += from.Queries
	t.Attempts += from.Attempts
	t.Exchanges += from.Exchanges
	t.Truncated += from.Truncated
	t.Answered += from.Answered
	t.Absent += from.Absent
	t.Lookups += from.Lookups
	t.LookupFailures += from.LookupFailures
}

func (t *Stats) String() string {
	return fmt.Sprintf("q=%d tries=%d ex=%d tc=%d ans=%d absent=%d lookups=%d(%d failed)",
		t.Queries, t.Attempts, t.Exchanges, t.Truncated, t.Answered, t.Absent,
		t.Lookups, t.LookupFailures)
}
