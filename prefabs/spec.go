package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// BossSpec tunes one boss. Zero fields keep the kind's built-in value.
type BossSpec struct {
	Name          string                    `yaml:"name"`
	Kind          string                    `yaml:"kind"`
	DisplayName   string                    `yaml:"display_name"`
	MaxHealth     int                       `yaml:"max_health"`
	Speed         float64                   `yaml:"speed"`
	ContactDamage int                       `yaml:"contact_damage"`
	ScoreValue    int                       `yaml:"score_value"`
	Width         float64                   `yaml:"width"`
	Height        float64                   `yaml:"height"`
	IdleDuration  float64                   `yaml:"idle_duration"`
	IdleByPhase   map[int]float64           `yaml:"idle_by_phase"`
	Color         *YAMLColor                `yaml:"color"`
	Attacks       map[string]AttackOverride `yaml:"attacks"`
	Scripted      []ScriptedAttackSpec      `yaml:"scripted"`
}

type AttackOverride struct {
	WindUp   *float64 `yaml:"wind_up"`
	Duration *float64 `yaml:"duration"`
	Cooldown *float64 `yaml:"cooldown"`
	MinPhase *int     `yaml:"min_phase"`
	Disabled bool     `yaml:"disabled"`
}

// ScriptedAttackSpec adds an attack whose body is a tengo script.
type ScriptedAttackSpec struct {
	Name     string  `yaml:"name"`
	Script   string  `yaml:"script"`
	WindUp   float64 `yaml:"wind_up"`
	Duration float64 `yaml:"duration"`
	Cooldown float64 `yaml:"cooldown"`
	MinPhase int     `yaml:"min_phase"`
}

func LoadBossSpec(name string) (*BossSpec, error) {
	file := "bosses/" + strings.TrimSuffix(name, ".yaml") + ".yaml"
	spec, err := LoadSpec[BossSpec](file)
	if err != nil {
		return nil, err
	}
	if spec.Name == "" {
		spec.Name = strings.TrimSuffix(name, ".yaml")
	}
	if spec.Kind == "" {
		return nil, fmt.Errorf("prefabs: %s: missing kind", file)
	}
	return &spec, nil
}

type MinionSpec struct {
	Kind            string     `yaml:"kind"`
	Health          int        `yaml:"health"`
	Speed           float64    `yaml:"speed"`
	Damage          int        `yaml:"damage"`
	ContactDamage   int        `yaml:"contact_damage"`
	ScoreValue      int        `yaml:"score_value"`
	AttackRange     float64    `yaml:"attack_range"`
	AttackCooldown  float64    `yaml:"attack_cooldown"`
	ProjectileSpeed float64    `yaml:"projectile_speed"`
	ProjectileKind  string     `yaml:"projectile_kind"`
	Width           float64    `yaml:"width"`
	Height          float64    `yaml:"height"`
	Color           *YAMLColor `yaml:"color"`
}

type minionTable struct {
	Minions []MinionSpec `yaml:"minions"`
}

// LoadMinionSpecs returns the minion table keyed by kind.
func LoadMinionSpecs() (map[string]MinionSpec, error) {
	table, err := LoadSpec[minionTable]("minions.yaml")
	if err != nil {
		return nil, err
	}
	out := make(map[string]MinionSpec, len(table.Minions))
	for _, m := range table.Minions {
		if m.Kind == "" {
			return nil, fmt.Errorf("prefabs: minions.yaml: entry without kind")
		}
		if m.Width == 0 {
			m.Width = 28
		}
		if m.Height == 0 {
			m.Height = m.Width
		}
		out[m.Kind] = m
	}
	return out, nil
}

type ArenaSpec struct {
	Width                 float64 `yaml:"width"`
	Height                float64 `yaml:"height"`
	TickRate              int     `yaml:"tick_rate"`
	MaxFrameTime          float64 `yaml:"max_frame_time"`
	DefaultBoss           string  `yaml:"default_boss"`
	PlayerSize            float64 `yaml:"player_size"`
	PlayerSpeed           float64 `yaml:"player_speed"`
	PlayerHealth          int     `yaml:"player_health"`
	PlayerInvulnerability float64 `yaml:"player_invulnerability"`
	PlayerFireInterval    float64 `yaml:"player_fire_interval"`
	PlayerShotSpeed       float64 `yaml:"player_shot_speed"`
	PlayerShotDamage      int     `yaml:"player_shot_damage"`
}

// DefaultArenaSpec is used for any field arena.yaml leaves at zero.
func DefaultArenaSpec() ArenaSpec {
	return ArenaSpec{
		Width:                 1280,
		Height:                720,
		TickRate:              60,
		MaxFrameTime:          0.25,
		DefaultBoss:           "irs_commissioner",
		PlayerSize:            28,
		PlayerSpeed:           200,
		PlayerHealth:          100,
		PlayerInvulnerability: 1.0,
		PlayerFireInterval:    0.15,
		PlayerShotSpeed:       500,
		PlayerShotDamage:      10,
	}
}

func LoadArenaSpec() (ArenaSpec, error) {
	spec, err := LoadSpec[ArenaSpec]("arena.yaml")
	if err != nil {
		return ArenaSpec{}, err
	}
	return spec.WithDefaults(), nil
}

// WithDefaults fills every unset field from DefaultArenaSpec.
func (s ArenaSpec) WithDefaults() ArenaSpec {
	d := DefaultArenaSpec()
	if s.Width <= 0 {
		s.Width = d.Width
	}
	if s.Height <= 0 {
		s.Height = d.Height
	}
	if s.TickRate <= 0 {
		s.TickRate = d.TickRate
	}
	if s.MaxFrameTime <= 0 {
		s.MaxFrameTime = d.MaxFrameTime
	}
	if s.DefaultBoss == "" {
		s.DefaultBoss = d.DefaultBoss
	}
	if s.PlayerSize <= 0 {
		s.PlayerSize = d.PlayerSize
	}
	if s.PlayerSpeed <= 0 {
		s.PlayerSpeed = d.PlayerSpeed
	}
	if s.PlayerHealth <= 0 {
		s.PlayerHealth = d.PlayerHealth
	}
	if s.PlayerInvulnerability <= 0 {
		s.PlayerInvulnerability = d.PlayerInvulnerability
	}
	if s.PlayerFireInterval <= 0 {
		s.PlayerFireInterval = d.PlayerFireInterval
	}
	if s.PlayerShotSpeed <= 0 {
		s.PlayerShotSpeed = d.PlayerShotSpeed
	}
	if s.PlayerShotDamage <= 0 {
		s.PlayerShotDamage = d.PlayerShotDamage
	}
	return s
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or an SVG color name.
type YAMLColor struct {
	color.RGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.RGBA = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.RGBA = color.RGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Or returns the parsed color, or fallback when unset.
func (c *YAMLColor) Or(fallback color.RGBA) color.RGBA {
	if c == nil {
		return fallback
	}
	return c.RGBA
}
