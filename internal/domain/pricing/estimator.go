package pricing

import (
	"math"
	"strings"

	"woodshop_builds/internal/domain/entities"
)

// Deterministic estimate arithmetic. Both the per-job snapshot attached on
// render completion and the per-version aggregate come from the same
// computation, so identical inputs always price identically.

const (
	defaultSpeciesRate = 11.0 // $/board-foot
	minBoardFeet       = 8.0
	laborBase          = 180.0
	laborPerBoardFoot  = 6.5
	overheadRate       = 0.15
	marginRate         = 0.25
	rangeSpread        = 0.10
)

var speciesRates = map[string]float64{
	"pine":   7.5,
	"oak":    11.0,
	"maple":  12.5,
	"cherry": 14.0,
	"walnut": 18.0,
}

var finishRates = map[string]float64{
	"natural": 40.0,
	"oil":     55.0,
	"stain":   65.0,
	"paint":   80.0,
	"epoxy":   140.0,
}

var joineryFactors = map[string]float64{
	"screws":         1.0,
	"pocket screws":  1.0,
	"dowels":         1.15,
	"mortise tenon":  1.4,
	"mortise&tenon":  1.4,
	"mortise-tenon":  1.4,
	"mortise_tenon":  1.4,
	"dovetail":       1.5,
}

// EstimateInternal computes the raw cost breakdown (no margin) from the
// dimensions and options. Pure and deterministic.
func EstimateInternal(dims entities.Dimensions, opts entities.BuildOptions) entities.EstimateBreakdown {
	bf := boardFeet(dims)

	materials := round2(bf * rateFor(speciesRates, opts.WoodSpecies, defaultSpeciesRate))
	labor := round2(laborBase + bf*laborPerBoardFoot*rateFor(joineryFactors, opts.Joinery, 1.0))
	finish := round2(rateFor(finishRates, opts.Finish, 40.0) * surfaceFactor(dims))
	overhead := round2(overheadRate * (materials + labor + finish))
	total := round2(materials + labor + finish + overhead)

	return entities.EstimateBreakdown{
		Materials: materials,
		Labor:     labor,
		Finish:    finish,
		Overhead:  overhead,
		Total:     total,
		RangeLow:  round2(total * (1 - rangeSpread)),
		RangeHigh: round2(total * (1 + rangeSpread)),
	}
}

// Estimate computes the customer-facing breakdown: internal costs with the
// shop margin applied proportionally across line items.
func Estimate(dims entities.Dimensions, opts entities.BuildOptions) entities.EstimateBreakdown {
	in := EstimateInternal(dims, opts)
	m := 1 + marginRate
	out := entities.EstimateBreakdown{
		Materials: round2(in.Materials * m),
		Labor:     round2(in.Labor * m),
		Finish:    round2(in.Finish * m),
		Overhead:  round2(in.Overhead * m),
	}
	out.Total = round2(out.Materials + out.Labor + out.Finish + out.Overhead)
	out.RangeLow = round2(out.Total * (1 - rangeSpread))
	out.RangeHigh = round2(out.Total * (1 + rangeSpread))
	return out
}

// boardFeet approximates lumber usage from the bounding box. Small pieces are
// floored at a minimum purchase quantity.
func boardFeet(d entities.Dimensions) float64 {
	bf := (d.LengthIn * d.WidthIn * d.HeightIn) / 1728.0 * 12.0
	if bf < minBoardFeet {
		return minBoardFeet
	}
	return bf
}

// surfaceFactor scales finish cost with the visible surface, in units of
// 10 sq ft, floored at one unit.
func surfaceFactor(d entities.Dimensions) float64 {
	areaSqFt := 2 * (d.LengthIn*d.WidthIn + d.LengthIn*d.HeightIn + d.WidthIn*d.HeightIn) / 144.0
	f := areaSqFt / 10.0
	if f < 1 {
		return 1
	}
	return f
}

func rateFor(table map[string]float64, key string, def float64) float64 {
	k := strings.ToLower(strings.TrimSpace(key))
	k = strings.ReplaceAll(k, " & ", " ")
	if v, ok := table[k]; ok {
		return v
	}
	return def
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
