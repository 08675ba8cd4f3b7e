package vault

// HealthResponse represents the health status of a Vault node.
//
// Use [SysService.Health] to retrieve the current health status:
//
//	health, err := client.Sys.Health(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Sealed: %v, Version: %s\n", health.Sealed, health.Version)
type HealthResponse struct {
	// Initialized reports whether the storage has been initialized.
	Initialized bool `json:"initialized"`

	// Sealed reports whether the node is sealed.
	Sealed bool `json:"sealed"`

	// Standby reports whether the node is a standby.
	Standby bool `json:"standby"`

	// PerformanceStandby reports whether the node is a performance standby
	// (Vault Enterprise).
	PerformanceStandby bool `json:"performance_standby"`

	// ReplicationPerformanceMode and ReplicationDRMode are "disabled" on
	// servers without replication.
	ReplicationPerformanceMode string `json:"replication_performance_mode,omitempty"`
	ReplicationDRMode          string `json:"replication_dr_mode,omitempty"`

	// ServerTimeUTC is the server clock as a Unix timestamp.
	ServerTimeUTC int64 `json:"server_time_utc"`

	// Version is the Vault server version.
	// Example: "1.15.2".
	Version string `json:"version"`

	ClusterName string `json:"cluster_name,omitempty"`
	ClusterID   string `json:"cluster_id,omitempty"`
}

// IsHealthy returns true if the node is initialized, unsealed and active.
//
// Example:
//
//	health, _ := client.Sys.Health(ctx)
//	if !health.IsHealthy() {
//	    log.Println("Vault is not serving requests")
//	}
func (h *HealthResponse) IsHealthy() bool {
	return h.Initialized && !h.Sealed && !h.Standby
}

// SealStatus represents the seal state of a Vault node.
type SealStatus struct {
	// Type is the seal type, e.g. "shamir".
	Type string `json:"type"`

	Initialized bool `json:"initialized"`
	Sealed      bool `json:"sealed"`

	// T is the unseal threshold and N the number of key shares.
	T int `json:"t"`
	N int `json:"n"`

	// Progress counts the unseal keys provided so far.
	Progress int    `json:"progress"`
	Nonce    string `json:"nonce"`

	Version      string `json:"version"`
	BuildDate    string `json:"build_date,omitempty"`
	Migration    bool   `json:"migration"`
	ClusterName  string `json:"cluster_name,omitempty"`
	ClusterID    string `json:"cluster_id,omitempty"`
	RecoverySeal bool   `json:"recovery_seal"`
	StorageType  string `json:"storage_type,omitempty"`
}

// MountTuneConfig holds the tunable settings of a mount.
type MountTuneConfig struct {
	DefaultLeaseTTL   Duration          `json:"default_lease_ttl,omitempty"`
	MaxLeaseTTL       Duration          `json:"max_lease_ttl,omitempty"`
	ForceNoCache      bool              `json:"force_no_cache,omitempty"`
	ListingVisibility ListingVisibility `json:"listing_visibility,omitempty"`
}

// MountInput is the request body used to enable a secrets engine or an
// auth method.
type MountInput struct {
	// Type is the backend to mount. Required.
	Type MountType `json:"type"`

	Description string            `json:"description,omitempty"`
	Config      MountTuneConfig   `json:"config"`
	Options     map[string]string `json:"options,omitempty"`
	Local       bool              `json:"local,omitempty"`
	SealWrap    bool              `json:"seal_wrap,omitempty"`
}

// MountOutput describes a mounted secrets engine.
type MountOutput struct {
	// Type is kept as raw text since servers can carry plugin backends
	// outside [MountType]; see [MountOutput.MountType].
	Type string `json:"type"`

	Description string            `json:"description"`
	Accessor    string            `json:"accessor"`
	Config      MountTuneConfig   `json:"config"`
	Options     map[string]string `json:"options"`
	Local       bool              `json:"local"`
	SealWrap    bool              `json:"seal_wrap"`
}

// MountType decodes Type. Plugin backends fail with UNKNOWN_ENUM_VALUE.
func (m *MountOutput) MountType() (MountType, error) {
	return mountTypes.Decode(m.Type)
}

// Health status constants, reported in replication modes.
const (
	// ReplicationDisabled is reported by servers without replication.
	ReplicationDisabled = "disabled"
)
