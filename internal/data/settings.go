package data

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Point is a tile-space coordinate as written in the settings file.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// FactionDef is one entry of the settings "factions" list. Faction ids are
// assigned from list order, starting at 1.
type FactionDef struct {
	Name      string `yaml:"name"`
	Colour    string `yaml:"colour"`
	Position  Point  `yaml:"position"`
	ShipSpawn Point  `yaml:"shipSpawn"`
}

// StartingSettings holds the per-ship values every new ship starts with.
type StartingSettings struct {
	CannonSpeed      float64 `yaml:"cannonSpeed"`
	AttackRangeTiles float64 `yaml:"attackRange_tiles"`
	Health           int     `yaml:"health"`
	Armor            int     `yaml:"armor"`
	Ammo             int     `yaml:"ammo"`
	Damage           float64 `yaml:"damage"`
	PlunderBonus     float64 `yaml:"plunderBonus"`
	XPBonus          float64 `yaml:"xpBonus"`
}

type FactionDefaults struct {
	ShipCount int `yaml:"shipCount"`
}

// Settings is the static game configuration consumed by the world manager.
type Settings struct {
	Starting        StartingSettings `yaml:"starting"`
	FactionDefaults FactionDefaults  `yaml:"factionDefaults"`
	Factions        []FactionDef     `yaml:"factions"`
}

var ErrInvalidSettings = errors.New("invalid settings")

// LoadSettings reads game settings from a YAML file.
func LoadSettings(path string) (*Settings, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}
	s, err := ParseSettings(raw)
	if err != nil {
		return nil, fmt.Errorf("settings %s: %w", path, err)
	}
	return s, nil
}

// ParseSettings decodes settings YAML over the built-in defaults and validates the result.
func ParseSettings(raw []byte) (*Settings, error) {
	s := DefaultSettings()
	if err := yaml.Unmarshal(raw, s); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// DefaultSettings returns starting values used when the file omits them.
// Factions have no default.
func DefaultSettings() *Settings {
	return &Settings{
		Starting: StartingSettings{
			CannonSpeed:      5,
			AttackRangeTiles: 3,
			Health:           100,
			Armor:            0,
			Ammo:             100,
			Damage:           10,
			PlunderBonus:     10,
			XPBonus:          10,
		},
		FactionDefaults: FactionDefaults{ShipCount: 3},
	}
}

func (s *Settings) Validate() error {
	if len(s.Factions) == 0 {
		return fmt.Errorf("%w: no factions", ErrInvalidSettings)
	}
	if s.FactionDefaults.ShipCount < 1 {
		return fmt.Errorf("%w: factionDefaults.shipCount must be >= 1, got %d", ErrInvalidSettings, s.FactionDefaults.ShipCount)
	}
	if s.Starting.Health <= 0 {
		return fmt.Errorf("%w: starting.health must be positive", ErrInvalidSettings)
	}
	for i, f := range s.Factions {
		if f.Name == "" || f.Colour == "" {
			return fmt.Errorf("%w: faction %d needs name and colour", ErrInvalidSettings, i+1)
		}
	}
	return nil
}
