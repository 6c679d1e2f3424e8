package game

import (
	"fmt"

	"donut-tell-me/assets"
	"donut-tell-me/internal/config"
	"donut-tell-me/internal/donut"
	"donut-tell-me/internal/scripting"
	"donut-tell-me/internal/system"

	"go.uber.org/zap"
)

// Rules are the shop settings shared by every session a process hosts.
type Rules struct {
	LineDepth       int
	MaxSpawnPerTick int
	RegularsToWin   int
	RankPolicy      string
	Serve           system.ServeRules
}

// NewRules builds Rules from the shop config. policy ranks offered donuts;
// nil means the weighted policy.
func NewRules(cfg config.ShopConfig, policy donut.Policy, cat *assets.Catalog) (Rules, error) {
	queue, err := system.ParseQueuePolicy(cfg.QueuePolicy)
	if err != nil {
		return Rules{}, err
	}
	if policy == nil {
		policy = donut.Weighted{}
	}
	return Rules{
		LineDepth:       cfg.LineDepth,
		MaxSpawnPerTick: cfg.MaxSpawnPerTick,
		RegularsToWin:   cfg.RegularsToWin,
		RankPolicy:      cfg.RankPolicy,
		Serve: system.ServeRules{
			Policy:      policy,
			Queue:       queue,
			LingerTicks: cfg.LingerTicks,
			EmoteTicks:  cfg.EmoteTicks,
			Catalog:     cat,
		},
	}, nil
}

// RankPolicy resolves the configured rank policy. The returned close func
// releases the Lua VM of a scripted policy and is never nil.
func RankPolicy(cfg config.ShopConfig, log *zap.Logger) (donut.Policy, func(), error) {
	switch cfg.RankPolicy {
	case "", "weighted":
		return donut.Weighted{}, func() {}, nil
	case "average":
		return donut.PlainAverage{}, func() {}, nil
	case "lua":
		p, err := scripting.LoadPolicy(cfg.LuaScript, log)
		if err != nil {
			return nil, nil, fmt.Errorf("rank policy: %w", err)
		}
		return p, p.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown rank policy %q", cfg.RankPolicy)
}
