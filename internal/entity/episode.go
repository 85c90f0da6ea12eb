package entity

// Episode is a serializable snapshot of one environment.
type Episode struct {
	ID              string `json:"id"`
	Board           Board  `json:"board"`
	Turn            Mark   `json:"turn"`
	StartMark       Mark   `json:"start_mark"`
	Done            bool   `json:"done"`
	SymmetricalView bool   `json:"symmetrical_view"`
	UseActionMask   bool   `json:"use_action_mask"`
}
