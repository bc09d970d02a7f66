package corpus

import "github.com/dmitrymomot/devicekit/pkg/textmatch"

// Record is one device row from the reference corpus. Records are
// immutable after corpus load; the engine shares them freely across
// concurrent resolution calls without copying or locking.
type Record struct {
	// ID is the corpus identifier. It doubles as the deterministic
	// tie-breaker: whenever a query could return several rows, the
	// lowest ID wins.
	ID int64 `json:"id"`

	FullName        string `json:"full_name"`
	Manufacturer    string `json:"manufacturer"`
	DeviceType      string `json:"device_type"`
	OperatingSystem string `json:"operating_system"`
	Bands           string `json:"bands"`
	LTESupport      bool   `json:"lte_support"`
	FiveGSupport    bool   `json:"five_g_support"`
	SIMSlotCount    int    `json:"sim_slot_count"`

	// EUICC is the embedded-SIM capability flag.
	EUICC bool `json:"euicc"`
}

// Key returns the case-folded full name the corpus is keyed by.
func (r Record) Key() string {
	return textmatch.Fold(r.FullName)
}
