package agent

// Tuning holds the hand-tuned constants of the weighted strategy. The yaml
// tags let a deployment override them from a file.
type Tuning struct {
	// DeniedVoteFactor scales the signal from a vote on a denied government.
	DeniedVoteFactor float64 `yaml:"denied_vote_factor"`
	// VoteChoiceFactor scales the signal from a vote on an enacted government.
	VoteChoiceFactor float64 `yaml:"vote_choice_factor"`
	// MaxVoteSuspicion caps the magnitude of any single vote-derived update.
	MaxVoteSuspicion int `yaml:"max_vote_suspicion"`

	FailedVetoFactor     int     `yaml:"failed_veto_factor"`
	ChancellorVetoFactor int     `yaml:"chancellor_veto_factor"`
	KillFactor           float64 `yaml:"kill_factor"`

	TeammateFactor       float64 `yaml:"teammate_factor"`
	MaxTeammateSuspicion int     `yaml:"max_teammate_suspicion"`
	// ConfirmedTeammateSuspicion is the raw signal when a teammate's
	// membership is confirmed, before TeammateFactor and the cap apply.
	ConfirmedTeammateSuspicion int `yaml:"confirmed_teammate_suspicion"`
	// ConfirmedVetoSuspicion is applied as is to the partner of a confirmed
	// member in a successful veto.
	ConfirmedVetoSuspicion int `yaml:"confirmed_veto_suspicion"`

	FascistPolicyChosen int     `yaml:"fascist_policy_chosen"`
	LiberalPolicyChosen int     `yaml:"liberal_policy_chosen"`
	PresidentBlameShare float64 `yaml:"president_blame_share"`
}

// DefaultTuning returns the constants the weighted strategy ships with.
func DefaultTuning() Tuning {
	return Tuning{
		DeniedVoteFactor:           1,
		VoteChoiceFactor:           0.3,
		MaxVoteSuspicion:           100,
		FailedVetoFactor:           1000,
		ChancellorVetoFactor:       1000,
		KillFactor:                 0.8,
		TeammateFactor:             0.5,
		MaxTeammateSuspicion:       100,
		ConfirmedTeammateSuspicion: 200,
		ConfirmedVetoSuspicion:     1000,
		FascistPolicyChosen:        -1000,
		LiberalPolicyChosen:        200,
		PresidentBlameShare:        0.75,
	}
}
