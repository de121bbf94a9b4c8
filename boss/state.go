package boss

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossarena/common"
	"github.com/milk9111/bossarena/hazard"
)

// AttackState is the kind-specific scratch record attacks mutate. Callers
// that need kind-specific fields switch on the concrete type.
type AttackState interface {
	Kind() Kind
	attackState()
}

type IRSState struct {
	BeamCount     int
	BeamSpeed     float64
	PapersPerWave int
	Beams         []*hazard.BeamSweep
}

func (*IRSState) Kind() Kind   { return KindIRSCommissioner }
func (*IRSState) attackState() {}

// Senator names which of the pair is filibustering.
type Senator int

const (
	SenatorNone Senator = iota
	// SenatorNavy is the primary body.
	SenatorNavy
	// SenatorCharcoal is the second combatant.
	SenatorCharcoal
)

// Combatant is a secondary body that shares the boss's health pool.
type Combatant struct {
	Pos        cp.Vector
	Width      float64
	Height     float64
	Invincible bool
}

func (c *Combatant) Position() cp.Vector { return c.Pos }

func (c *Combatant) Bounds() common.Rect {
	return common.RectAround(c.Pos.X, c.Pos.Y, c.Width, c.Height)
}

type SenatorState struct {
	Second         *Combatant
	Filibuster     Senator
	FilibusterZone *hazard.LingeringZone
}

func (*SenatorState) Kind() Kind   { return KindSenatorPair }
func (*SenatorState) attackState() {}

// Filibustering reports whether s is currently invulnerable behind a
// filibuster.
func (st *SenatorState) Filibustering(s Senator) bool {
	return st.Filibuster != SenatorNone && st.Filibuster == s
}

type SpeakerState struct {
	SlamTarget cp.Vector
	Slam       *hazard.Shockwave
	Shielded   bool
	VoteCalled bool
	Ruling     *hazard.Shockwave
}

func (*SpeakerState) Kind() Kind   { return KindSpeaker }
func (*SpeakerState) attackState() {}

type VicePresidentState struct {
	BeamAngle float64
	Beam      *hazard.BeamSweep
	Summoned  bool
	Pulse     *hazard.Shockwave
}

func (*VicePresidentState) Kind() Kind   { return KindVicePresident }
func (*VicePresidentState) attackState() {}

type PresidentState struct {
	ZoneCenters   []cp.Vector
	ZoneRadius    float64
	Zones         []*hazard.LingeringZone
	VetoAngle     float64
	Barrier       *hazard.ReflectiveBarrier
	DronesSpawned bool
	ReticleSpots  []ReticleSpot
	Reticles      []*hazard.TargetReticle
	Beams         []*hazard.BeamSweep
}

// ReticleSpot is a planned air strike.
type ReticleSpot struct {
	Pos   cp.Vector
	Delay float64
}

func (*PresidentState) Kind() Kind   { return KindPresident }
func (*PresidentState) attackState() {}
