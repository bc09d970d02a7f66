package fingerprint

import (
	"github.com/dmitrymomot/devicekit/pkg/corpus"
	"github.com/dmitrymomot/devicekit/pkg/textmatch"
)

// appleFallbackRecords is the minimal built-in stand-in for the corpus:
// the iPhone models the geometry buckets can produce, with their known
// eSIM flags. It exists so the Apple tier still yields capability
// evidence when the corpus is empty or unreachable. Synthetic IDs keep
// these rows clearly apart from imported corpus identifiers.
var appleFallbackRecords = []corpus.Record{
	{ID: 9000001, FullName: "Apple iPhone X", Manufacturer: "Apple", DeviceType: "Smartphone", OperatingSystem: "iOS", LTESupport: true, SIMSlotCount: 1, EUICC: false},
	{ID: 9000002, FullName: "Apple iPhone XS", Manufacturer: "Apple", DeviceType: "Smartphone", OperatingSystem: "iOS", LTESupport: true, SIMSlotCount: 1, EUICC: true},
	{ID: 9000003, FullName: "Apple iPhone XR", Manufacturer: "Apple", DeviceType: "Smartphone", OperatingSystem: "iOS", LTESupport: true, SIMSlotCount: 1, EUICC: true},
	{ID: 9000011, FullName: "Apple iPhone 11", Manufacturer: "Apple", DeviceType: "Smartphone", OperatingSystem: "iOS", LTESupport: true, SIMSlotCount: 1, EUICC: true},
	{ID: 9000012, FullName: "Apple iPhone 12", Manufacturer: "Apple", DeviceType: "Smartphone", OperatingSystem: "iOS", LTESupport: true, FiveGSupport: true, SIMSlotCount: 1, EUICC: true},
	{ID: 9000013, FullName: "Apple iPhone 13", Manufacturer: "Apple", DeviceType: "Smartphone", OperatingSystem: "iOS", LTESupport: true, FiveGSupport: true, SIMSlotCount: 1, EUICC: true},
	{ID: 9000014, FullName: "Apple iPhone 13 Pro", Manufacturer: "Apple", DeviceType: "Smartphone", OperatingSystem: "iOS", LTESupport: true, FiveGSupport: true, SIMSlotCount: 1, EUICC: true},
	{ID: 9000015, FullName: "Apple iPhone 14", Manufacturer: "Apple", DeviceType: "Smartphone", OperatingSystem: "iOS", LTESupport: true, FiveGSupport: true, SIMSlotCount: 1, EUICC: true},
	{ID: 9000016, FullName: "Apple iPhone 14 Pro", Manufacturer: "Apple", DeviceType: "Smartphone", OperatingSystem: "iOS", LTESupport: true, FiveGSupport: true, SIMSlotCount: 1, EUICC: true},
	{ID: 9000017, FullName: "Apple iPhone 15", Manufacturer: "Apple", DeviceType: "Smartphone", OperatingSystem: "iOS", LTESupport: true, FiveGSupport: true, SIMSlotCount: 1, EUICC: true},
	{ID: 9000018, FullName: "Apple iPhone 15 Pro", Manufacturer: "Apple", DeviceType: "Smartphone", OperatingSystem: "iOS", LTESupport: true, FiveGSupport: true, SIMSlotCount: 1, EUICC: true},
	{ID: 9000019, FullName: "Apple iPhone 16", Manufacturer: "Apple", DeviceType: "Smartphone", OperatingSystem: "iOS", LTESupport: true, FiveGSupport: true, SIMSlotCount: 1, EUICC: true},
}

// AppleFallback returns the built-in record whose name contains the
// given model, for use when the corpus yields nothing at all.
func AppleFallback(model string) (*corpus.Record, bool) {
	if textmatch.Fold(model) == "" {
		return nil, false
	}
	for i := range appleFallbackRecords {
		if textmatch.Contains(appleFallbackRecords[i].FullName, model) {
			return &appleFallbackRecords[i], true
		}
	}
	return nil, false
}
