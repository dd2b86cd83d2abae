package effect

import (
	"github.com/udisondev/tussle/internal/model"
)

// StatAdditive adds a signed delta to one base or derived stat.
type StatAdditive struct {
	Stat model.CharStat
}

// NewStatAdditive builds a StatAdditive from registry params.
// Params: "stat" (stat code, e.g. "GRT" or "PDF"), "value" (signed integer).
func NewStatAdditive(params map[string]string) (Effect, error) {
	kind, err := model.ParseStatKind(params["stat"])
	if err != nil {
		return nil, invalidParam("StatAdditive", "stat", err)
	}
	value, err := intParam(params, "value")
	if err != nil {
		return nil, invalidParam("StatAdditive", "value", err)
	}
	return StatAdditive{Stat: model.CharStat{Kind: kind, Value: value}}, nil
}

func (e StatAdditive) Name() string { return "StatAdditive" }

// Describe formats the delta, e.g. "+5 DEX".
func (e StatAdditive) Describe() string { return e.Stat.String() }

func (e StatAdditive) Order() int { return DefaultOrder }

func (e StatAdditive) ApplyToStats(s *model.Stats) { e.Stat.ApplyToStats(s) }

func (e StatAdditive) ApplyToGameStats(g *model.GameStats) { e.Stat.ApplyToGameStats(g) }
