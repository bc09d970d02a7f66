package fingerprint

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/devicekit/pkg/textmatch"
)

// appleBucket maps one exact CSS-pixel geometry triple to the iPhone
// models that render at it. Models are ordered most-common first.
type appleBucket struct {
	width, height, ratio int
	models               []string
}

// Apple reuses logical screen sizes across generations, which is why
// most buckets hold several models. The table is fixed by release data,
// not learned.
var appleBuckets = []appleBucket{
	{390, 844, 3, []string{"iPhone 12", "iPhone 13", "iPhone 13 Pro", "iPhone 14"}},
	{393, 852, 3, []string{"iPhone 14 Pro", "iPhone 15", "iPhone 15 Pro", "iPhone 16"}},
	{430, 932, 3, []string{"iPhone 14 Pro Max", "iPhone 15 Plus", "iPhone 15 Pro Max", "iPhone 16 Plus"}},
	{428, 926, 3, []string{"iPhone 12 Pro Max", "iPhone 13 Pro Max", "iPhone 14 Plus"}},
	{402, 874, 3, []string{"iPhone 16 Pro"}},
	{440, 956, 3, []string{"iPhone 16 Pro Max"}},
}

// AppleOption supplies optional refinement hints to ResolveApple.
type AppleOption func(*appleHints)

type appleHints struct {
	gpuRenderer         string
	hardwareConcurrency int
}

// WithGPURenderer passes the WebGL renderer string as a refinement hint.
func WithGPURenderer(renderer string) AppleOption {
	return func(h *appleHints) { h.gpuRenderer = renderer }
}

// WithHardwareConcurrency passes the reported logical core count as a
// refinement hint.
func WithHardwareConcurrency(n int) AppleOption {
	return func(h *appleHints) { h.hardwareConcurrency = n }
}

// ResolveApple looks up the candidate iPhone models for an exact screen
// geometry triple. The pixel ratio is rounded to the nearest integer
// before matching. Returns ok=false when no bucket matches or any part
// of the triple is missing.
func ResolveApple(width, height int, pixelRatio float64, opts ...AppleOption) (Candidates, bool) {
	if width <= 0 || height <= 0 || pixelRatio <= 0 {
		return Candidates{}, false
	}

	var hints appleHints
	for _, opt := range opts {
		opt(&hints)
	}

	ratio := int(math.Round(pixelRatio))
	for _, b := range appleBuckets {
		if b.width != width || b.height != height || b.ratio != ratio {
			continue
		}

		if len(b.models) == 1 {
			return Candidates{
				Models:      b.models,
				Unique:      true,
				DisplayName: b.models[0],
			}, true
		}

		if model, ok := refineApple(b.models, hints); ok {
			return Candidates{
				Models:      []string{model},
				Unique:      true,
				DisplayName: model,
			}, true
		}

		return Candidates{
			Models:      b.models,
			Unique:      false,
			DisplayName: synthesizeAppleLabel(b.models),
		}, true
	}

	return Candidates{}, false
}

// refineApple tries to narrow an ambiguous bucket using the GPU renderer
// and core count. It never succeeds today: every model sharing a
// geometry bucket also shares its reported GPU family ("Apple GPU") and
// core count, so the hints carry no distinguishing signal. The step is
// kept because it is the designated seam for any future hint that does
// discriminate; the limitation is intentional, not a defect.
func refineApple(models []string, hints appleHints) (string, bool) {
	if hints.gpuRenderer == "" && hints.hardwareConcurrency == 0 {
		return "", false
	}
	// Safari reports the same masked renderer string across generations
	// and every candidate bucket spans models with identical advertised
	// concurrency, so there is nothing to narrow on.
	return "", false
}

var appleModelPattern = regexp.MustCompile(`iphone\s+(\d+)\s*(pro max|pro|plus|mini|max)?`)

// synthesizeAppleLabel builds the display label for an ambiguous bucket:
// the numeric generation span of its candidates plus the variant tag if
// every candidate shares one.
func synthesizeAppleLabel(models []string) string {
	minGen, maxGen := 0, 0
	variant := ""
	variantShared := true

	for i, model := range models {
		m := appleModelPattern.FindStringSubmatch(textmatch.Fold(model))
		if m == nil {
			continue
		}
		gen, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if minGen == 0 || gen < minGen {
			minGen = gen
		}
		if gen > maxGen {
			maxGen = gen
		}
		if i == 0 {
			variant = m[2]
		} else if m[2] != variant {
			variantShared = false
		}
	}

	if minGen == 0 {
		// Nothing parsed; fall back to the most common candidate.
		return models[0]
	}

	label := fmt.Sprintf("iPhone %d", minGen)
	if maxGen > minGen {
		label = fmt.Sprintf("iPhone %d / %d", minGen, maxGen)
	}
	if variantShared && variant != "" {
		label += " " + cases.Title(language.English).String(variant)
	}
	return label + " Series"
}
