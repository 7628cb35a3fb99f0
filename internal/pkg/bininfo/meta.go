// Package bininfo holds build metadata. Both variables are overwritten at link time:
//
//	go build -ldflags "-X github.com/glentakahashi/spt-pityloot/internal/pkg/bininfo.Version=v1.2.0+abc123"
package bininfo

var (
	// Version is the SemVer version of the binary, with the git commit appended after a
	// plus sign when available.
	Version = "v0.0.0-dev"

	// BuildTime is the RFC 3339 time the binary was built at.
	BuildTime = "1970-01-01T00:00:00Z"
)

// Product names the binary and its version, as sent in the Server header.
func Product() string {
	return "PityLoot/" + Version
}
