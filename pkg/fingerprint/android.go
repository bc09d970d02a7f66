package fingerprint

import (
	"strings"

	"github.com/dmitrymomot/devicekit/pkg/textmatch"
)

// widthTolerance absorbs the small per-browser rounding differences in
// reported CSS pixel dimensions.
const widthTolerance = 2

// AndroidEntry maps a GPU renderer substring plus expected screen
// geometry to the device models known to ship that combination.
type AndroidEntry struct {
	// GPU is matched as a case-folded substring of the renderer string.
	GPU string `yaml:"gpu"`

	// Width is the expected CSS pixel width, matched within ±2 px.
	Width int `yaml:"width"`

	// Height is the expected CSS pixel height, matched within ±2 px.
	// Zero means the entry matches any height.
	Height int `yaml:"height"`

	// DisplayName labels the candidate set.
	DisplayName string `yaml:"display_name"`

	// Models are the candidate model names, most-common first.
	Models []string `yaml:"models"`
}

// AndroidTable is an ordered list of fingerprint entries; the first
// matching entry wins.
type AndroidTable []AndroidEntry

// builtinAndroidTable pairs the GPUs that leak through WebGL with the
// handful of devices shipping them at each screen size. Entries whose
// GPU/geometry pair is shared across models carry the full candidate
// list; the rest identify a single device.
var builtinAndroidTable = AndroidTable{
	{GPU: "adreno (tm) 710", Width: 432, Height: 960, DisplayName: "Motorola Edge 50 Fusion / Moto G84", Models: []string{"Motorola Edge 50 Fusion", "Moto G84"}},
	{GPU: "adreno (tm) 740", Width: 360, Height: 780, DisplayName: "Samsung Galaxy S23", Models: []string{"Samsung Galaxy S23"}},
	{GPU: "adreno (tm) 750", Width: 384, Height: 832, DisplayName: "Samsung Galaxy S24 Ultra", Models: []string{"Samsung Galaxy S24 Ultra"}},
	{GPU: "mali-g715", Width: 412, Height: 915, DisplayName: "Google Pixel 8 / 7a", Models: []string{"Google Pixel 8", "Google Pixel 7a"}},
	{GPU: "mali-g710", Width: 412, Height: 915, DisplayName: "Google Pixel 7 / 7 Pro", Models: []string{"Google Pixel 7", "Google Pixel 7 Pro"}},
	{GPU: "mali-g68", Width: 412, Height: 915, DisplayName: "Samsung Galaxy A54", Models: []string{"Samsung Galaxy A54"}},
	{GPU: "adreno (tm) 644", Width: 412, Height: 919, DisplayName: "Nothing Phone (2)", Models: []string{"Nothing Phone (2)"}},
	{GPU: "adreno (tm) 732", Width: 393, Height: 873, DisplayName: "POCO X6 Pro / Redmi Note 13 Pro+", Models: []string{"POCO X6 Pro", "Redmi Note 13 Pro+"}},
	{GPU: "immortalis-g720", Width: 412, Height: 892, DisplayName: "OnePlus 12R / Xiaomi 14", Models: []string{"OnePlus 12R", "Xiaomi 14"}},
}

// Resolve matches a renderer string and screen geometry against the
// table. Width is required; height is compared only when both the entry
// and the caller provide one. Returns ok=false when nothing matches.
func (t AndroidTable) Resolve(renderer string, width, height int) (Candidates, bool) {
	folded := textmatch.Fold(renderer)
	if folded == "" || width <= 0 {
		return Candidates{}, false
	}

	for _, e := range t {
		if !strings.Contains(folded, e.GPU) {
			continue
		}
		if !within(width, e.Width, widthTolerance) {
			continue
		}
		if e.Height > 0 && height > 0 && !within(height, e.Height, widthTolerance) {
			continue
		}

		return Candidates{
			Models:      e.Models,
			Unique:      len(e.Models) == 1,
			DisplayName: e.DisplayName,
		}, true
	}

	return Candidates{}, false
}

// ResolveAndroid matches against the built-in table.
func ResolveAndroid(renderer string, width, height int) (Candidates, bool) {
	return builtinAndroidTable.Resolve(renderer, width, height)
}

func within(got, want, tolerance int) bool {
	d := got - want
	if d < 0 {
		d = -d
	}
	return d <= tolerance
}
