package actor

// StatBlock holds an agent's core attributes and combat pool.
type StatBlock struct {
	Health       int `json:"health"`
	MaxHealth    int `json:"max_health"`
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Intelligence int `json:"intelligence"`
	Charisma     int `json:"charisma"`
	Level        int `json:"level"`
	Experience   int `json:"experience"`
}

// ToAttributes converts the stat block to a map for d20.Actor compatibility.
func (s *StatBlock) ToAttributes() map[string]int {
	return map[string]int{
		"strength":     s.Strength,
		"dexterity":    s.Dexterity,
		"intelligence": s.Intelligence,
		"charisma":     s.Charisma,
	}
}

// TakeDamage reduces health by n. Health cannot go below 0; whether zero
// health means death is owned by an external combat-resolution collaborator,
// not decided here.
func (s *StatBlock) TakeDamage(n int) {
	if n <= 0 {
		return
	}
	s.Health -= n
	if s.Health < 0 {
		s.Health = 0
	}
}

// Heal increases health by n. Health cannot exceed MaxHealth.
func (s *StatBlock) Heal(n int) {
	if n <= 0 {
		return
	}
	s.Health += n
	if s.Health > s.MaxHealth {
		s.Health = s.MaxHealth
	}
}

// HealthRatio returns current health as a fraction of max, or 0 when max is
// unset.
func (s *StatBlock) HealthRatio() float64 {
	if s.MaxHealth <= 0 {
		return 0
	}
	return float64(s.Health) / float64(s.MaxHealth)
}
