package entity

const (
	NoReward   = 0
	WinReward  = 1
	LoseReward = -1
)

// Rewards holds the reward for the side that started the episode first, then for the other side.
type Rewards [2]int

// Observation is the board as seen by the caller after reset or step.
type Observation struct {
	Board      [BoardSize]int `json:"board"`
	ActionMask []bool         `json:"action_mask,omitempty"`
}
