package vault

import (
	"context"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Version is the current SDK version.
//
// This version follows semantic versioning (https://semver.org/).
// The version is incremented according to the following rules:
//   - MAJOR: Breaking changes to the public API
//   - MINOR: New features, backwards compatible
//   - PATCH: Bug fixes, backwards compatible
const Version = "0.1.0"

// APIVersion is the Vault server version this SDK was built against.
const APIVersion = "1.15.0"

// APIVersionRange is the semver constraint of supported server versions.
const APIVersionRange = ">= 1.12.0, < 2.0.0"

var apiConstraint = mustConstraint(APIVersionRange)

func mustConstraint(c string) *semver.Constraints {
	constraint, err := semver.NewConstraint(c)
	if err != nil {
		panic(fmt.Sprintf("vault: invalid version constraint %q: %v", c, err))
	}
	return constraint
}

// CompatibilityStatus is the outcome of a version check.
type CompatibilityStatus int

const (
	Unknown CompatibilityStatus = iota
	Compatible
	Incompatible
)

func (s CompatibilityStatus) String() string {
	switch s {
	case Compatible:
		return "compatible"
	case Incompatible:
		return "incompatible"
	default:
		return "unknown"
	}
}

// CompatibilityResult describes how a server version relates to the
// versions this SDK supports.
type CompatibilityResult struct {
	Status           CompatibilityStatus
	ServerVersion    string
	SDKVersion       string
	TargetAPIVersion string
	SupportedRange   string
	Message          string
}

// IsCompatible reports whether Status is [Compatible].
func (r CompatibilityResult) IsCompatible() bool {
	return r.Status == Compatible
}

// CheckCompatibility compares a server version against [APIVersionRange].
//
// Enterprise and build suffixes ("1.15.2+ent") are accepted.
func CheckCompatibility(serverVersion string) CompatibilityResult {
	result := CompatibilityResult{
		ServerVersion:    serverVersion,
		SDKVersion:       Version,
		TargetAPIVersion: APIVersion,
		SupportedRange:   APIVersionRange,
	}

	v, err := semver.NewVersion(serverVersion)
	if err != nil {
		result.Status = Unknown
		result.Message = fmt.Sprintf("cannot parse server version %q: %v", serverVersion, err)
		return result
	}

	// Pre-releases of a supported version count as supported.
	core, _ := v.SetPrerelease("")
	if apiConstraint.Check(&core) {
		result.Status = Compatible
		result.Message = fmt.Sprintf("server version %s is compatible with %s", serverVersion, APIVersionRange)
	} else {
		result.Status = Incompatible
		result.Message = fmt.Sprintf("server version %s is not compatible with %s", serverVersion, APIVersionRange)
	}
	return result
}

// IsCompatible reports whether serverVersion is supported.
func IsCompatible(serverVersion string) bool {
	return CheckCompatibility(serverVersion).IsCompatible()
}

// MustBeCompatible panics unless serverVersion is supported.
func MustBeCompatible(serverVersion string) {
	if r := CheckCompatibility(serverVersion); !r.IsCompatible() {
		panic("vault: " + r.Message)
	}
}

// CheckServerCompatibility reads the server version from sys/health and
// checks it.
func (c *Client) CheckServerCompatibility(ctx context.Context) (CompatibilityResult, error) {
	health, err := c.Sys.Health(ctx)
	if err != nil {
		return CompatibilityResult{}, err
	}
	return CheckCompatibility(health.Version), nil
}
