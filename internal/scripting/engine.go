package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM for tunable game rules.
// Single-goroutine access only (game loop).
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads all scripts from the given directory.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}

	// Core helpers first, then rule scripts that may use them
	for _, sub := range []string{"core", "combat", "ai"} {
		p := filepath.Join(scriptsDir, sub)
		if err := e.loadDir(p); err != nil {
			vm.Close()
			return nil, fmt.Errorf("load %s scripts: %w", sub, err)
		}
	}

	return e, nil
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// NPCAction is the verb returned by npc_decide.
type NPCAction string

const (
	ActionIdle   NPCAction = "idle"
	ActionChase  NPCAction = "chase"
	ActionAttack NPCAction = "attack"
	ActionFlee   NPCAction = "flee"
)

// NPCContext is the view of one NPC ship handed to npc_decide.
// Distances are in tiles.
type NPCContext struct {
	Name        string
	Health      int
	MaxHealth   int
	Ammo        int
	HasTarget   bool
	TargetDist  float64
	AttackRange float64
	CanFire     bool
}

// DefaultDecision is used when npc_decide is missing or fails.
func DefaultDecision(ctx NPCContext) NPCAction {
	switch {
	case !ctx.HasTarget:
		return ActionIdle
	case ctx.TargetDist <= ctx.AttackRange && ctx.Ammo > 0:
		return ActionAttack
	}
	return ActionChase
}

// DecideNPC calls the Lua npc_decide(ctx) function.
func (e *Engine) DecideNPC(ctx NPCContext) NPCAction {
	fn := e.vm.GetGlobal("npc_decide")
	if fn == lua.LNil {
		e.log.Error("lua function npc_decide not found")
		return DefaultDecision(ctx)
	}

	t := e.vm.NewTable()
	t.RawSetString("health", lua.LNumber(ctx.Health))
	t.RawSetString("max_health", lua.LNumber(ctx.MaxHealth))
	t.RawSetString("ammo", lua.LNumber(ctx.Ammo))
	t.RawSetString("has_target", lua.LBool(ctx.HasTarget))
	t.RawSetString("target_dist", lua.LNumber(ctx.TargetDist))
	t.RawSetString("attack_range", lua.LNumber(ctx.AttackRange))
	t.RawSetString("can_fire", lua.LBool(ctx.CanFire))

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, t); err != nil {
		e.log.Error("lua npc_decide error", zap.Error(err), zap.String("ship", ctx.Name))
		return DefaultDecision(ctx)
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	switch a := NPCAction(lua.LVAsString(result)); a {
	case ActionIdle, ActionChase, ActionAttack, ActionFlee:
		return a
	default:
		e.log.Warn("lua npc_decide returned unknown action",
			zap.String("action", string(a)), zap.String("ship", ctx.Name))
		return DefaultDecision(ctx)
	}
}

// RewardContext describes a sinking for sink_reward.
type RewardContext struct {
	VictimPlunder int
	VictimXP      int
	PlunderBonus  float64 // killer's
	XPBonus       float64 // killer's
	Monster       bool
}

// Reward is what the killer gains.
type Reward struct {
	Plunder int
	XP      int
}

// DefaultReward is used when sink_reward is missing or fails: the killer's
// bonuses plus half of what the victim carried.
func DefaultReward(ctx RewardContext) Reward {
	return Reward{
		Plunder: int(ctx.PlunderBonus) + ctx.VictimPlunder/2,
		XP:      int(ctx.XPBonus) + ctx.VictimXP/2,
	}
}

// SinkReward calls the Lua sink_reward(ctx) function.
func (e *Engine) SinkReward(ctx RewardContext) Reward {
	fn := e.vm.GetGlobal("sink_reward")
	if fn == lua.LNil {
		e.log.Error("lua function sink_reward not found")
		return DefaultReward(ctx)
	}

	t := e.vm.NewTable()
	t.RawSetString("victim_plunder", lua.LNumber(ctx.VictimPlunder))
	t.RawSetString("victim_xp", lua.LNumber(ctx.VictimXP))
	t.RawSetString("plunder_bonus", lua.LNumber(ctx.PlunderBonus))
	t.RawSetString("xp_bonus", lua.LNumber(ctx.XPBonus))
	t.RawSetString("monster", lua.LBool(ctx.Monster))

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, t); err != nil {
		e.log.Error("lua sink_reward error", zap.Error(err))
		return DefaultReward(ctx)
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	rt, ok := result.(*lua.LTable)
	if !ok {
		e.log.Error("lua sink_reward returned non-table")
		return DefaultReward(ctx)
	}

	return Reward{
		Plunder: lInt(rt, "plunder"),
		XP:      lInt(rt, "xp"),
	}
}

// lInt reads an integer field from a Lua table.
func lInt(t *lua.LTable, key string) int {
	return int(lua.LVAsNumber(t.RawGetString(key)))
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
