// Package scripting lets a shop swap the ranking formula for a Lua script.
package scripting

import (
	"fmt"
	"math"
	"sync"

	"donut-tell-me/internal/donut"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// RankFunc is the global the script must define:
//
//	function rank(base, glazing, sprinkles) return stars end
const RankFunc = "rank"

// LuaPolicy is a donut.Policy backed by one gopher-lua VM. Calls are
// serialized; any script failure falls back to the weighted policy.
type LuaPolicy struct {
	mu       sync.Mutex
	vm       *lua.LState
	log      *zap.Logger
	fallback donut.Policy
}

// LoadPolicy runs the script at path and checks that it defines rank.
func LoadPolicy(path string, log *zap.Logger) (*LuaPolicy, error) {
	vm := lua.NewState()
	if err := vm.DoFile(path); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return newPolicy(vm, log)
}

// NewPolicy is LoadPolicy for a script held in memory.
func NewPolicy(source string, log *zap.Logger) (*LuaPolicy, error) {
	vm := lua.NewState()
	if err := vm.DoString(source); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load rank script: %w", err)
	}
	return newPolicy(vm, log)
}

func newPolicy(vm *lua.LState, log *zap.Logger) (*LuaPolicy, error) {
	if fn, ok := vm.GetGlobal(RankFunc).(*lua.LFunction); !ok || fn == nil {
		vm.Close()
		return nil, fmt.Errorf("rank script does not define %s()", RankFunc)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &LuaPolicy{vm: vm, log: log, fallback: donut.Weighted{}}, nil
}

// Rank calls rank(base, glazing, sprinkles) and rounds the result into 0..5.
func (p *LuaPolicy) Rank(base, glazing, sprinkles int) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	err := p.vm.CallByParam(lua.P{
		Fn:      p.vm.GetGlobal(RankFunc),
		NRet:    1,
		Protect: true,
	}, lua.LNumber(base), lua.LNumber(glazing), lua.LNumber(sprinkles))
	if err != nil {
		p.log.Error("lua rank error", zap.Error(err))
		return p.fallback.Rank(base, glazing, sprinkles)
	}
	ret := p.vm.Get(-1)
	p.vm.Pop(1)

	n, ok := ret.(lua.LNumber)
	if !ok {
		p.log.Error("lua rank returned non-number", zap.String("type", ret.Type().String()))
		return p.fallback.Rank(base, glazing, sprinkles)
	}
	return donut.ClampRank(int(math.Round(float64(n))))
}

// Close releases the VM.
func (p *LuaPolicy) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.vm.Close()
}
