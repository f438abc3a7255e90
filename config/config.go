package config

// SimConfig contains the fixed-timestep driver settings
type SimConfig struct {
	TickRate     int     `yaml:"tick_rate"`      // simulation ticks per second
	MaxFrameTime float64 `yaml:"max_frame_time"` // seconds; spiral-of-death cap
}

// Dt is the fixed step in seconds.
func (s SimConfig) Dt() float64 {
	return 1.0 / float64(s.TickRate)
}

// StageConfig describes the playable floor of a stage
type StageConfig struct {
	Name     string  `yaml:"name"`
	MinX     float64 `yaml:"min_x"`
	MaxX     float64 `yaml:"max_x"`
	MinY     float64 `yaml:"min_y"`  // depth band top
	MaxY     float64 `yaml:"max_y"`  // depth band bottom
	Width    int     `yaml:"width"`  // collision space size in pixels
	Height   int     `yaml:"height"` // collision space size in pixels
	CellSize int     `yaml:"cell_size"`
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	// Timing (seconds)
	DeathDuration float64 `yaml:"death_duration"`
	BlockDuration float64 `yaml:"block_duration"`
	ParryDuration float64 `yaml:"parry_duration"`
	DodgeDuration float64 `yaml:"dodge_duration"`
	JumpDuration  float64 `yaml:"jump_duration"`

	// Dodge burst speed
	DodgeSpeed float64 `yaml:"dodge_speed"`

	// Walk speed for player-controlled fighters
	WalkSpeed  float64 `yaml:"walk_speed"`
	DepthSpeed float64 `yaml:"depth_speed"`

	// Blocking only works against attacks from the front
	BlockRequiresFacing bool `yaml:"block_requires_facing"`
}

// ComboConfig contains combo scaling and style rank values
type ComboConfig struct {
	Timeout         float64 `yaml:"timeout"`
	ScalingStep     float64 `yaml:"scaling_step"`
	MinScaling      float64 `yaml:"min_scaling"`
	HitstunStep     float64 `yaml:"hitstun_step"`
	MinHitstunDecay float64 `yaml:"min_hitstun_decay"`
	// Hit counts at which the rank becomes C, B, A, S, SS and SSS
	RankThresholds [6]int `yaml:"rank_thresholds"`
}

// MeterConfig contains meter sizes and accrual rates
type MeterConfig struct {
	Maximum        float64 `yaml:"maximum"`
	Segments       int     `yaml:"segments"`
	GainMultiplier float64 `yaml:"gain_multiplier"`

	DamageDealtRate    float64 `yaml:"damage_dealt_rate"`
	DamageReceivedRate float64 `yaml:"damage_received_rate"`
	BlockGain          float64 `yaml:"block_gain"`
	ParryGain          float64 `yaml:"parry_gain"`
	ComboExtendedGain  float64 `yaml:"combo_extended_gain"`
	SpecialMoveGain    float64 `yaml:"special_move_gain"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	FighterFriction  float64 `yaml:"fighter_friction"`
	FighterGravity   float64 `yaml:"fighter_gravity"` // gravity scale for fighters; the floor is a depth plane
	ParticleFriction float64 `yaml:"particle_friction"`
}

// AIConfig contains the reactive behaviour tuning shared by every controller
type AIConfig struct {
	ReactionBase            float64 `yaml:"reaction_base"`
	ReactionDifficultyScale float64 `yaml:"reaction_difficulty_scale"`
	ReactionJitter          float64 `yaml:"reaction_jitter"`
	ReactionFloor           float64 `yaml:"reaction_floor"`

	ApproachSpeed      float64 `yaml:"approach_speed"`
	ApproachSpeedScale float64 `yaml:"approach_speed_scale"`
	RetreatSpeed       float64 `yaml:"retreat_speed"`
	RetreatSpeedScale  float64 `yaml:"retreat_speed_scale"`
	DepthSpeed         float64 `yaml:"depth_speed"`
	DepthSpeedScale    float64 `yaml:"depth_speed_scale"`

	DepthThreshold  float64 `yaml:"depth_threshold"`  // min depth offset before moving vertically
	FacingThreshold float64 `yaml:"facing_threshold"` // min horizontal offset before turning

	// Boss phase thresholds as health fractions
	BossPhase2 float64 `yaml:"boss_phase2"`
	BossPhase3 float64 `yaml:"boss_phase3"`
}

// InputConfig contains input buffer sizing
type InputConfig struct {
	BufferSize    int     `yaml:"buffer_size"`
	CommandWindow float64 `yaml:"command_window"` // seconds
}

// ParticleConfig contains particle pool and hit spark settings
type ParticleConfig struct {
	MaxParticles    int        `yaml:"max_particles"`
	HitSparkCount   int        `yaml:"hit_spark_count"`
	HitSparkSpeed   float64    `yaml:"hit_spark_speed"`
	HitSparkLife    float64    `yaml:"hit_spark_life"`
	HitSparkSize    [2]float64 `yaml:"hit_spark_size"` // start, end
	HitSparkColor   [2]Color   `yaml:"hit_spark_color"`
	HitSparkGravity float64    `yaml:"hit_spark_gravity"`
}

// ReplayConfig contains recorder settings
type ReplayConfig struct {
	MaxFrames int    `yaml:"max_frames"`
	Version   string `yaml:"version"`
}

// WaveConfig contains the enemy wave director settings
type WaveConfig struct {
	Enabled         bool        `yaml:"enabled"`
	Count           int         `yaml:"count"`
	BaseEnemies     int         `yaml:"base_enemies"`
	FirstSpawnDelay float64     `yaml:"first_spawn_delay"`
	SpawnInterval   float64     `yaml:"spawn_interval"`
	EnemyPool       []Character `yaml:"enemy_pool"`
	Behaviors       []Behavior  `yaml:"behaviors"`
	Difficulty      float64     `yaml:"difficulty"`
	// Boss spawned as the last enemy of the final wave, if set
	Boss *Character `yaml:"boss"`
}

// Color is an RGBA color with components in [0,1]
type Color struct {
	R, G, B, A float32
}

// Config is the full tuning set of one simulation. Each simulation owns its
// own copy so that several can run side by side.
type Config struct {
	Sim       SimConfig      `yaml:"sim"`
	Stage     StageConfig    `yaml:"stage"`
	Combat    CombatConfig   `yaml:"combat"`
	Combo     ComboConfig    `yaml:"combo"`
	Meter     MeterConfig    `yaml:"meter"`
	Physics   PhysicsConfig  `yaml:"physics"`
	AI        AIConfig       `yaml:"ai"`
	Input     InputConfig    `yaml:"input"`
	Particles ParticleConfig `yaml:"particles"`
	Replay    ReplayConfig   `yaml:"replay"`
	Waves     WaveConfig     `yaml:"waves"`
}

// Default returns the stock tuning.
func Default() *Config {
	return &Config{
		Sim: SimConfig{
			TickRate:     120,
			MaxFrameTime: 0.25,
		},
		Stage: StageConfig{
			Name:     "classroom",
			MinX:     50,
			MaxX:     1536, // 1.2 screen widths
			MinY:     340,
			MaxY:     660,
			Width:    2048,
			Height:   1024,
			CellSize: 32,
		},
		Combat: CombatConfig{
			DeathDuration:       1.0,
			BlockDuration:       0.4,
			ParryDuration:       0.2,
			DodgeDuration:       0.3,
			JumpDuration:        0.5,
			DodgeSpeed:          420,
			WalkSpeed:           220,
			DepthSpeed:          160,
			BlockRequiresFacing: true,
		},
		Combo: ComboConfig{
			Timeout:         2.0,
			ScalingStep:     0.95,
			MinScaling:      0.3,
			HitstunStep:     0.98,
			MinHitstunDecay: 0.5,
			RankThresholds:  [6]int{3, 6, 10, 15, 20, 30},
		},
		Meter: MeterConfig{
			Maximum:            100,
			Segments:           4,
			GainMultiplier:     1,
			DamageDealtRate:    0.5,
			DamageReceivedRate: 0.3,
			BlockGain:          5,
			ParryGain:          15,
			ComboExtendedGain:  3,
			SpecialMoveGain:    10,
		},
		Physics: PhysicsConfig{
			Gravity:          980,
			FighterFriction:  8,
			FighterGravity:   0,
			ParticleFriction: 0,
		},
		AI: AIConfig{
			ReactionBase:            0.28,
			ReactionDifficultyScale: 0.12,
			ReactionJitter:          0.12,
			ReactionFloor:           0.14,
			ApproachSpeed:           160,
			ApproachSpeedScale:      100,
			RetreatSpeed:            120,
			RetreatSpeedScale:       80,
			DepthSpeed:              140,
			DepthSpeedScale:         60,
			DepthThreshold:          6,
			FacingThreshold:         1,
			BossPhase2:              0.66,
			BossPhase3:              0.33,
		},
		Input: InputConfig{
			BufferSize:    20,
			CommandWindow: 0.2,
		},
		Particles: ParticleConfig{
			MaxParticles:    512,
			HitSparkCount:   6,
			HitSparkSpeed:   180,
			HitSparkLife:    0.35,
			HitSparkSize:    [2]float64{6, 1},
			HitSparkColor:   [2]Color{{R: 1, G: 0.95, B: 0.6, A: 1}, {R: 1, G: 0.3, B: 0.1, A: 0}},
			HitSparkGravity: 600,
		},
		Replay: ReplayConfig{
			MaxFrames: 36000, // 5 minutes at 120 Hz
			Version:   "1.0.0",
		},
		Waves: WaveConfig{
			Enabled:         false,
			Count:           3,
			BaseEnemies:     3,
			FirstSpawnDelay: 0.5,
			SpawnInterval:   1.0,
			EnemyPool:       []Character{PrefectA, PrefectB, Librarian, Coach},
			Behaviors:       []Behavior{BehaviorAggressive, BehaviorBalanced, BehaviorDefensive},
			Difficulty:      0.5,
		},
	}
}
