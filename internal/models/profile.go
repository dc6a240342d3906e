package models

// Profile is the part of the upstream user profile the deposit flow reads.
type Profile struct {
	Balance float64 `json:"balance"`
}
