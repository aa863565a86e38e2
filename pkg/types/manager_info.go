package types

// ManagerInfo describes a registered manager for listings
type ManagerInfo struct {
	Name      string `json:"name"`
	Kind      Kind   `json:"kind"`
	Available bool   `json:"available"`
}
