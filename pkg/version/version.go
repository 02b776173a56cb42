package version

// version is set at build time with
// -ldflags "-X github.com/cbodonnell/shaft/pkg/version.version=x.y.z"
var version = "dev"

func Get() string {
	return version
}
