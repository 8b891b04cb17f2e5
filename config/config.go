// Package config holds the gameplay tuning values and their YAML overlay.
// Defaults are the shipped numbers; a tuning file overrides only the fields
// it names.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is every numeric knob the movement and combat code reads.
// Durations are milliseconds, speeds are units per second.
type Tuning struct {
	GravityY float64 `yaml:"gravity_y"`

	WalkSpeed     float64 `yaml:"walk_speed"`
	RunSpeed      float64 `yaml:"run_speed"`
	CrouchSpeed   float64 `yaml:"crouch_speed"`
	IdleThreshold float64 `yaml:"idle_threshold"`

	AccelRun       float64 `yaml:"accel_run"`
	AccelWalk      float64 `yaml:"accel_walk"`
	AccelCrouch    float64 `yaml:"accel_crouch"`
	AccelAir       float64 `yaml:"accel_air"`
	GroundFriction float64 `yaml:"ground_friction"`
	MaxSpeedX      float64 `yaml:"max_speed_x"`
	MaxSpeedY      float64 `yaml:"max_speed_y"`

	JumpForce   float64 `yaml:"jump_force"`
	MaxJumps    int     `yaml:"max_jumps"`
	CoyoteTime  float64 `yaml:"coyote_time"`
	JumpBuffer  float64 `yaml:"jump_buffer"`
	LandingLock float64 `yaml:"landing_lock"`

	AttackWindow   float64 `yaml:"attack_window"`
	AttackCooldown float64 `yaml:"attack_cooldown"`
	ComboWindow    float64 `yaml:"combo_window"`
	ComboMax       int     `yaml:"combo_max"`

	DashSpeed    float64 `yaml:"dash_speed"`
	DashDuration float64 `yaml:"dash_duration"`
	DashCooldown float64 `yaml:"dash_cooldown"`

	SlideBoost       float64 `yaml:"slide_boost"`
	SlideFriction    float64 `yaml:"slide_friction"`
	SlideMinSpeed    float64 `yaml:"slide_min_speed"`
	SlideMaxDuration float64 `yaml:"slide_max_duration"`
	SlideCooldown    float64 `yaml:"slide_cooldown"`
	SlideTapWindow   float64 `yaml:"slide_tap_window"`

	BlinkDistance float64 `yaml:"blink_distance"`
	BlinkCooldown float64 `yaml:"blink_cooldown"`
	BlinkManaCost float64 `yaml:"blink_mana_cost"`
	WarpDistance  float64 `yaml:"warp_distance"`
	WarpCooldown  float64 `yaml:"warp_cooldown"`
	WarpManaCost  float64 `yaml:"warp_mana_cost"`

	HookSpeed    float64 `yaml:"hook_speed"`
	HookDuration float64 `yaml:"hook_duration"`
	HookCooldown float64 `yaml:"hook_cooldown"`
	HookManaCost float64 `yaml:"hook_mana_cost"`

	DiagonalScale float64 `yaml:"diagonal_scale"`

	MaxHealth float64 `yaml:"max_health"`
	MaxMana   float64 `yaml:"max_mana"`
	ManaRegen float64 `yaml:"mana_regen"`
}

// Default returns the shipped tuning set.
func Default() Tuning {
	return Tuning{
		GravityY: 1400,

		WalkSpeed:     300,
		RunSpeed:      500,
		CrouchSpeed:   150,
		IdleThreshold: 5,

		AccelRun:       2400,
		AccelWalk:      1800,
		AccelCrouch:    900,
		AccelAir:       1200,
		GroundFriction: 2000,
		MaxSpeedX:      1000,
		MaxSpeedY:      1600,

		JumpForce:   650,
		MaxJumps:    2,
		CoyoteTime:  150,
		JumpBuffer:  200,
		LandingLock: 300,

		AttackWindow:   300,
		AttackCooldown: 350,
		ComboWindow:    500,
		ComboMax:       3,

		DashSpeed:    900,
		DashDuration: 250,
		DashCooldown: 800,

		SlideBoost:       650,
		SlideFriction:    1200,
		SlideMinSpeed:    120,
		SlideMaxDuration: 600,
		SlideCooldown:    1000,
		SlideTapWindow:   150,

		BlinkDistance: 140,
		BlinkCooldown: 1200,
		BlinkManaCost: 15,
		WarpDistance:  260,
		WarpCooldown:  2500,
		WarpManaCost:  25,

		HookSpeed:    1100,
		HookDuration: 350,
		HookCooldown: 900,
		HookManaCost: 10,

		DiagonalScale: 0.7,

		MaxHealth: 100,
		MaxMana:   100,
		ManaRegen: 10,
	}
}

// RunThreshold is the horizontal speed above which grounded movement counts
// as running.
func (t Tuning) RunThreshold() float64 {
	return 1.5 * t.WalkSpeed
}

// Load reads a tuning file and overlays it on the defaults. A missing file
// is not an error; the defaults are returned.
func Load(path string) (Tuning, error) {
	t := Default()
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return t, nil
		}
		return t, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &t); err != nil {
		return Default(), fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	t.sanitize()
	return t, nil
}

// sanitize backfills values a hand-edited file can break. Bad entries fall
// back to the defaults rather than failing the load.
func (t *Tuning) sanitize() {
	d := Default()
	if t.WalkSpeed <= 0 {
		t.WalkSpeed = d.WalkSpeed
	}
	if t.RunSpeed < t.WalkSpeed {
		t.RunSpeed = d.RunSpeed
	}
	if t.CrouchSpeed <= 0 {
		t.CrouchSpeed = d.CrouchSpeed
	}
	if t.MaxJumps < 1 {
		t.MaxJumps = d.MaxJumps
	}
	if t.ComboMax < 1 {
		t.ComboMax = d.ComboMax
	}
	if t.DiagonalScale <= 0 || t.DiagonalScale > 1 {
		t.DiagonalScale = d.DiagonalScale
	}
	if t.DashDuration <= 0 {
		t.DashDuration = d.DashDuration
	}
	if t.MaxSpeedX <= 0 {
		t.MaxSpeedX = d.MaxSpeedX
	}
	if t.MaxSpeedY <= 0 {
		t.MaxSpeedY = d.MaxSpeedY
	}
	if t.MaxHealth <= 0 {
		t.MaxHealth = d.MaxHealth
	}
	if t.MaxMana <= 0 {
		t.MaxMana = d.MaxMana
	}
}
