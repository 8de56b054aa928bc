package scripting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeScript(t *testing.T, dir, sub, name, src string) {
	t.Helper()
	p := filepath.Join(dir, sub)
	require.NoError(t, os.MkdirAll(p, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(p, name), []byte(src), 0o644))
}

func newTestEngine(t *testing.T, dir string) *Engine {
	t.Helper()
	e, err := NewEngine(dir, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(e.Close)
	return e
}

func TestDecideNPCFromScript(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "ai", "npc.lua", `
function npc_decide(ctx)
  if not ctx.has_target then return "idle" end
  if ctx.target_dist <= ctx.attack_range then return "attack" end
  return "chase"
end
`)
	e := newTestEngine(t, dir)

	assert.Equal(t, ActionIdle, e.DecideNPC(NPCContext{}))
	assert.Equal(t, ActionAttack, e.DecideNPC(NPCContext{HasTarget: true, TargetDist: 2, AttackRange: 3}))
	assert.Equal(t, ActionChase, e.DecideNPC(NPCContext{HasTarget: true, TargetDist: 9, AttackRange: 3}))
}

func TestDecideNPCFallbacks(t *testing.T) {
	ctx := NPCContext{HasTarget: true, TargetDist: 1, AttackRange: 3, Ammo: 5}

	missing := newTestEngine(t, t.TempDir())
	assert.Equal(t, ActionAttack, missing.DecideNPC(ctx))

	dir := t.TempDir()
	writeScript(t, dir, "ai", "npc.lua", `
function npc_decide(ctx) return "dance" end
`)
	unknown := newTestEngine(t, dir)
	assert.Equal(t, DefaultDecision(ctx), unknown.DecideNPC(ctx))

	dir = t.TempDir()
	writeScript(t, dir, "ai", "npc.lua", `
function npc_decide(ctx) error("boom") end
`)
	failing := newTestEngine(t, dir)
	assert.Equal(t, ActionAttack, failing.DecideNPC(ctx))
}

func TestDefaultDecision(t *testing.T) {
	assert.Equal(t, ActionIdle, DefaultDecision(NPCContext{}))
	assert.Equal(t, ActionChase, DefaultDecision(NPCContext{HasTarget: true, TargetDist: 2, AttackRange: 3}), "no ammo")
	assert.Equal(t, ActionChase, DefaultDecision(NPCContext{HasTarget: true, TargetDist: 5, AttackRange: 3, Ammo: 1}))
}

func TestSinkReward(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "combat", "reward.lua", `
function sink_reward(ctx)
  local share = 0.5
  if ctx.monster then share = 1 end
  return {
    plunder = math.floor(ctx.plunder_bonus + ctx.victim_plunder * share),
    xp = math.floor(ctx.xp_bonus + ctx.victim_xp * share),
  }
end
`)
	e := newTestEngine(t, dir)

	got := e.SinkReward(RewardContext{VictimPlunder: 40, VictimXP: 20, PlunderBonus: 10, XPBonus: 10})
	assert.Equal(t, Reward{Plunder: 30, XP: 20}, got)

	got = e.SinkReward(RewardContext{VictimPlunder: 40, VictimXP: 20, PlunderBonus: 10, XPBonus: 10, Monster: true})
	assert.Equal(t, Reward{Plunder: 50, XP: 30}, got)
}

func TestSinkRewardFallback(t *testing.T) {
	e := newTestEngine(t, t.TempDir())
	ctx := RewardContext{VictimPlunder: 7, VictimXP: 3, PlunderBonus: 10, XPBonus: 10.9}
	assert.Equal(t, Reward{Plunder: 13, XP: 11}, e.SinkReward(ctx))
}

func TestNewEngineBadScript(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "combat", "broken.lua", `function (`)
	_, err := NewEngine(dir, zap.NewNop())
	assert.Error(t, err)
}

func TestBundledScripts(t *testing.T) {
	e := newTestEngine(t, filepath.Join("..", "..", "scripts"))

	assert.Equal(t, ActionAttack, e.DecideNPC(NPCContext{
		HasTarget: true, TargetDist: 2, AttackRange: 3, Ammo: 10, Health: 100, MaxHealth: 100,
	}))
	assert.Equal(t, ActionFlee, e.DecideNPC(NPCContext{
		HasTarget: true, TargetDist: 2, AttackRange: 3, Ammo: 10, Health: 10, MaxHealth: 100,
	}))
	assert.Equal(t, Reward{Plunder: 30, XP: 20},
		e.SinkReward(RewardContext{VictimPlunder: 40, VictimXP: 20, PlunderBonus: 10, XPBonus: 10}))
}
