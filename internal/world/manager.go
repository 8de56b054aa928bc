// Package world owns the game session: factions, ships, colleges, hazards,
// pickups, the cannonball pool and the tile graph.
package world

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/yorkpirates/seacore/internal/component"
	"github.com/yorkpirates/seacore/internal/core/ecs"
	"github.com/yorkpirates/seacore/internal/core/event"
	"github.com/yorkpirates/seacore/internal/data"
	"github.com/yorkpirates/seacore/internal/geom"
	"github.com/yorkpirates/seacore/internal/nav"
	"github.com/yorkpirates/seacore/internal/physics"
	"go.uber.org/zap"
)

// ErrOutOfRange is raised when a faction, college or ship id does not exist.
var ErrOutOfRange = errors.New("id out of range")

// ErrSpawnOrder is raised when the player would not end up at ships[0].
var ErrSpawnOrder = errors.New("spawn order violated")

// Sprite atlases.
const (
	atlasMap   = 1
	atlasProps = 2
	atlasShips = 3
)

// SpriteSource looks sprites up by atlas and key.
type SpriteSource interface {
	Sprite(atlas int, key string) (data.Sprite, error)
}

type noSprites struct{}

func (noSprites) Sprite(atlas int, key string) (data.Sprite, error) {
	return data.Sprite{}, fmt.Errorf("atlas %d key %q: %w", atlas, key, data.ErrSpriteNotFound)
}

// Deps are the collaborators a Manager reads from.
type Deps struct {
	Settings *data.Settings
	Sprites  SpriteSource
	Tiles    nav.TileSource // nil leaves the world without a path graph
	Bus      *event.Bus
	Log      *zap.Logger
}

// Options tune the session. Zero sizes and durations take DefaultOptions
// values; spawn counts are used as given, so zero means only the anchored
// instance.
type Options struct {
	TileSize           float64
	PoolSize           int
	ProjectileLifetime time.Duration
	ShipRadius         float64
	Boulders           int
	Monsters           int
	Enhancements       int
	Extent             float64 // side of the square spawn area, world units
	Rand               *rand.Rand
}

func DefaultOptions() Options {
	return Options{
		TileSize:           32,
		PoolSize:           20,
		ProjectileLifetime: 2 * time.Second,
		ShipRadius:         16,
		Boulders:           20,
		Monsters:           10,
		Enhancements:       20,
		Extent:             3200,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.TileSize <= 0 {
		o.TileSize = d.TileSize
	}
	if o.PoolSize <= 0 {
		o.PoolSize = d.PoolSize
	}
	if o.ProjectileLifetime <= 0 {
		o.ProjectileLifetime = d.ProjectileLifetime
	}
	if o.ShipRadius <= 0 {
		o.ShipRadius = d.ShipRadius
	}
	if o.Boulders < 0 {
		o.Boulders = 0
	}
	if o.Monsters < 0 {
		o.Monsters = 0
	}
	if o.Enhancements < 0 {
		o.Enhancements = 0
	}
	if o.Extent <= 0 {
		o.Extent = d.Extent
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(1))
	}
	return o
}

// monsterAnchor is where the guaranteed monster always spawns.
var monsterAnchor = geom.V(1696, 770)

// Manager is the explicit session context: it owns every registry and the
// spawn order. All methods run on the game loop goroutine.
type Manager struct {
	settings *data.Settings
	sprites  SpriteSource
	tiles    nav.TileSource
	bus      *event.Bus
	log      *zap.Logger
	opts     Options
	rng      *rand.Rand

	world       *ecs.World
	initialised bool
	sessionID   uuid.UUID

	factions     []*Faction
	ships        []*Ship // ships[0] is the player
	byID         map[ecs.EntityID]*Ship
	colleges     []*College // index = factionID-1
	boulders     []*Boulder
	monsters     []*Monster
	enhancements []*Enhancement
	worldMap     *WorldMap
	pool         *ProjectilePool
	graph        *nav.Graph

	spriteMisses int
}

// NewManager creates an uninitialised session. Every public entry point
// initialises on first use.
func NewManager(deps Deps, opts Options) *Manager {
	if deps.Settings == nil {
		deps.Settings = data.DefaultSettings()
	}
	if deps.Sprites == nil {
		deps.Sprites = noSprites{}
	}
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	opts = opts.withDefaults()
	return &Manager{
		settings: deps.Settings,
		sprites:  deps.Sprites,
		tiles:    deps.Tiles,
		bus:      deps.Bus,
		log:      deps.Log,
		opts:     opts,
		rng:      opts.Rand,
		world:    ecs.NewWorld(),
		byID:     make(map[ecs.EntityID]*Ship),
	}
}

// Initialise builds the faction registry from settings. Calls after the
// first are no-ops.
func (m *Manager) Initialise() {
	if m.initialised {
		return
	}
	m.initialised = true
	m.sessionID = uuid.New()

	m.factions = make([]*Faction, 0, len(m.settings.Factions))
	for _, def := range m.settings.Factions {
		m.factions = append(m.factions, &Faction{
			ID:       len(m.factions) + 1,
			Name:     def.Name,
			Colour:   def.Colour,
			Position: m.TilesToDistance(geom.V(def.Position.X, def.Position.Y)),
			SpawnPos: m.TilesToDistance(geom.V(def.ShipSpawn.X, def.ShipSpawn.Y)),
		})
	}
	m.log.Info("world initialised",
		zap.String("session", m.sessionID.String()),
		zap.Int("factions", len(m.factions)))
}

func (m *Manager) tryInit() {
	if !m.initialised {
		m.Initialise()
	}
}

// SpawnGame builds the whole session in order: pool, world map and tile
// graph, player, colleges with their NPCs, boulders, monsters, enhancements.
// Call it once per Manager.
func (m *Manager) SpawnGame() {
	m.tryInit()
	m.pool = newProjectilePool(m, m.opts.PoolSize)
	m.CreateWorldMap()
	m.CreatePlayer()
	m.CreateCollegeAndNPC()
	m.CreateBoulders()
	m.CreateMonsters()
	m.CreateEnhancements()
	m.log.Info("game spawned",
		zap.Int("entities", m.world.Len()),
		zap.Int("ships", len(m.ships)),
		zap.Int("colleges", len(m.colleges)),
		zap.Int("pool", m.pool.Cap()))
}

// CreateWorldMap spawns the terrain entity and builds the tile graph.
func (m *Manager) CreateWorldMap() *WorldMap {
	m.tryInit()
	m.worldMap = newWorldMap(m, m.tiles)
	if m.tiles != nil {
		m.graph = nav.NewGraph(m.tiles)
		m.log.Debug("tile graph built",
			zap.Int("width", m.graph.Width()),
			zap.Int("height", m.graph.Height()),
			zap.Int("nodes", m.graph.Nodes()))
	}
	return m.worldMap
}

// CreatePlayer spawns the player ship in faction 1. It must run before any
// NPC ship so the player lands at ships[0].
func (m *Manager) CreatePlayer() *Ship {
	m.tryInit()
	if len(m.ships) > 0 {
		panic(fmt.Errorf("create player after %d ships: %w", len(m.ships), ErrSpawnOrder))
	}
	s := m.newShip("Ship", ecs.CapShip|ecs.CapPlayer)
	s.SetFaction(1)
	s.SetPosition(m.Faction(1).SpawnPos)
	m.ships = append(m.ships, s)
	return s
}

// CreateNPCShip spawns an NPC ship for factionID.
func (m *Manager) CreateNPCShip(factionID int) *Ship {
	m.tryInit()
	s := m.newShip("Ship", ecs.CapShip)
	s.SetFaction(factionID)
	m.ships = append(m.ships, s)
	return s
}

// CreateCollegeAndNPC spawns each faction's college and its NPC fleet at
// the faction's ship spawn. Faction 1 gets one ship fewer, since the
// player sails for it.
func (m *Manager) CreateCollegeAndNPC() {
	m.tryInit()
	cnt := m.settings.FactionDefaults.ShipCount
	for i, f := range m.factions {
		m.CreateCollege(f.ID)
		n := cnt
		if i == 0 {
			n = cnt - 1
		}
		for j := 0; j < n; j++ {
			s := m.CreateNPCShip(f.ID)
			s.SetPosition(f.SpawnPos)
		}
	}
}

// CreateCollege spawns the college for factionID.
func (m *Manager) CreateCollege(factionID int) *College {
	m.tryInit()
	c := newCollege(m, m.Faction(factionID))
	m.colleges = append(m.colleges, c)
	return c
}

// CreateBoulders scatters the configured number of boulders, plus one
// next to the player.
func (m *Manager) CreateBoulders() {
	m.tryInit()
	for i := 0; i < m.opts.Boulders; i++ {
		m.boulders = append(m.boulders, newBoulder(m, m.scatter()))
	}
	m.boulders = append(m.boulders, newBoulder(m, m.nearPlayer()))
}

// CreateMonsters scatters the configured number of monsters, plus one at
// the fixed anchor.
func (m *Manager) CreateMonsters() {
	m.tryInit()
	for i := 0; i < m.opts.Monsters; i++ {
		m.monsters = append(m.monsters, newMonster(m, m.scatter()))
	}
	m.monsters = append(m.monsters, newMonster(m, monsterAnchor))
}

// CreateEnhancements scatters the configured number of pickups, plus one
// next to the player.
func (m *Manager) CreateEnhancements() {
	m.tryInit()
	for i := 0; i < m.opts.Enhancements; i++ {
		m.enhancements = append(m.enhancements, newEnhancement(m, m.scatter()))
	}
	m.enhancements = append(m.enhancements, newEnhancement(m, m.nearPlayer()))
}

func (m *Manager) scatter() geom.Vec2 {
	return geom.V(m.rng.Float64()*m.opts.Extent, m.rng.Float64()*m.opts.Extent)
}

// nearPlayer picks a spot 100-200 units right of and below the player.
func (m *Manager) nearPlayer() geom.Vec2 {
	p := m.Player().Position()
	return geom.V(p.X+m.rng.Float64()*100+100, p.Y-m.rng.Float64()*100-100)
}

// Shoot fires the next pooled cannonball from ship toward dir. A zero
// direction fires nothing and returns nil.
func (m *Manager) Shoot(ship *Ship, dir geom.Vec2) *CannonBall {
	m.tryInit()
	if dir.IsZero() {
		return nil
	}
	if m.pool == nil {
		m.pool = newProjectilePool(m, m.opts.PoolSize)
	}
	ball, overwrote := m.pool.next()
	if overwrote {
		m.log.Debug("cannonball slot reused in flight",
			zap.String("ball", ball.Name()),
			zap.Int("slot", ball.Slot()),
			zap.Int("overwrites", m.pool.Overwrites()))
	}
	dir = dir.Nor()
	ball.fire(ship, ship.Position(), dir, ship.BulletSpeed()*m.opts.TileSize, m.opts.ProjectileLifetime)
	event.Emit(m.bus, event.ProjectileFired{
		Shooter:     ship.ID(),
		ShooterName: ship.Name(),
		Slot:        ball.Slot(),
		Dir:         dir,
		Overwrote:   overwrote,
	})
	return ball
}

// Path routes from src to dst, both in world units. The steps are tile
// moves. Without a tile graph every path is empty.
func (m *Manager) Path(src, dst geom.Vec2) *nav.Path {
	m.tryInit()
	if m.graph == nil {
		return &nav.Path{}
	}
	return m.graph.FindPath(m.ToTile(src), m.ToTile(dst))
}

// AttackRange is the session-wide cannon range in world units.
func (m *Manager) AttackRange() float64 {
	m.tryInit()
	return m.settings.Starting.AttackRangeTiles * m.opts.TileSize
}

func (m *Manager) TileSize() float64 { return m.opts.TileSize }

func (m *Manager) TilesToDistance(v geom.Vec2) geom.Vec2 { return v.Scale(m.opts.TileSize) }

// ToTile maps a world position to the tile containing it.
func (m *Manager) ToTile(v geom.Vec2) nav.Tile {
	return nav.Tile{
		X: int(math.Floor(v.X / m.opts.TileSize)),
		Y: int(math.Floor(v.Y / m.opts.TileSize)),
	}
}

// Faction returns the faction with the given 1-based id.
func (m *Manager) Faction(id int) *Faction {
	m.tryInit()
	if id < 1 || id > len(m.factions) {
		panic(fmt.Errorf("faction %d of %d: %w", id, len(m.factions), ErrOutOfRange))
	}
	return m.factions[id-1]
}

func (m *Manager) Factions() []*Faction {
	m.tryInit()
	return m.factions
}

// College returns the college of the given faction.
func (m *Manager) College(factionID int) *College {
	m.tryInit()
	if factionID < 1 || factionID > len(m.colleges) {
		panic(fmt.Errorf("college %d of %d: %w", factionID, len(m.colleges), ErrOutOfRange))
	}
	return m.colleges[factionID-1]
}

func (m *Manager) Colleges() []*College {
	m.tryInit()
	return m.colleges
}

// Ship returns ships[i].
func (m *Manager) Ship(i int) *Ship {
	m.tryInit()
	if i < 0 || i >= len(m.ships) {
		panic(fmt.Errorf("ship %d of %d: %w", i, len(m.ships), ErrOutOfRange))
	}
	return m.ships[i]
}

// Player is always ships[0].
func (m *Manager) Player() *Ship { return m.Ship(0) }

func (m *Manager) Ships() []*Ship {
	m.tryInit()
	return m.ships
}

// Combatants lists every stat-bearing hull: ships first, then monsters.
func (m *Manager) Combatants() []*Ship {
	m.tryInit()
	out := make([]*Ship, 0, len(m.ships)+len(m.monsters))
	out = append(out, m.ships...)
	for _, mo := range m.monsters {
		out = append(out, mo.Ship)
	}
	return out
}

// ShipByID finds a ship or monster hull by entity id.
func (m *Manager) ShipByID(id ecs.EntityID) (*Ship, bool) {
	s, ok := m.byID[id]
	return s, ok
}

func (m *Manager) Boulders() []*Boulder         { return m.boulders }
func (m *Manager) Monsters() []*Monster         { return m.monsters }
func (m *Manager) Enhancements() []*Enhancement { return m.enhancements }
func (m *Manager) WorldMap() *WorldMap          { return m.worldMap }
func (m *Manager) Pool() *ProjectilePool        { return m.pool }
func (m *Manager) Graph() *nav.Graph            { return m.graph }
func (m *Manager) World() *ecs.World            { return m.world }
func (m *Manager) Settings() *data.Settings     { return m.settings }
func (m *Manager) Bus() *event.Bus              { return m.bus }

// SessionID identifies this game session in logs and the combat journal.
func (m *Manager) SessionID() uuid.UUID {
	m.tryInit()
	return m.sessionID
}

// SpriteMisses counts sprite lookups that failed and were ignored.
func (m *Manager) SpriteMisses() int { return m.spriteMisses }

// sprite looks up a sprite for e. A miss is reported and swallowed: the
// caller keeps whatever it was showing.
func (m *Manager) sprite(e *ecs.Entity, atlas int, key string) (data.Sprite, bool) {
	s, err := m.sprites.Sprite(atlas, key)
	if err != nil {
		m.spriteMisses++
		m.log.Debug("sprite lookup failed",
			zap.String("entity", e.Name()),
			zap.Int("atlas", atlas),
			zap.String("key", key),
			zap.Error(err))
		event.Emit(m.bus, event.SpriteMissing{EntityName: e.Name(), Key: key})
		return data.Sprite{}, false
	}
	return s, true
}

// newBody attaches Transform, Renderable and RigidBody to e. An empty key
// leaves the sprite unset.
func (m *Manager) newBody(e *ecs.Entity, pos geom.Vec2, layer component.RenderLayer, atlas int, key string,
	bodyType physics.BodyType, radius float64) (*component.Transform, *component.Renderable, *component.RigidBody) {
	t := component.NewTransform(pos.X, pos.Y)
	var sp data.Sprite
	if key != "" {
		sp, _ = m.sprite(e, atlas, key)
	}
	r := component.NewRenderable(layer, sp)
	rb := component.NewRigidBody(bodyType, radius, r, t)
	e.AddComponents(t, r, rb)
	return t, r, rb
}
