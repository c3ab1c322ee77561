package core

import (
	"strconv"
	"strings"

	"github.com/gobuffalo/envy"
	log "github.com/sirupsen/logrus"
)

// Config carries the already-parsed operator configuration consumed by the
// builders. Values merge with what the application requests; the disable
// lists win over everything else.
type Config struct {
	// Verbose switches construction-time logging to debug level.
	Verbose bool

	// Version forces the negotiated API version, capped by what the
	// driver actually supports. VersionNone means no override.
	Version Version

	// EnabledLayers and EnabledInstanceExtensions are added to every
	// InstanceCreateInfo, EnabledExtensions to every DeviceCreateInfo.
	EnabledLayers             []string
	EnabledInstanceExtensions []string
	EnabledExtensions         []string

	// DisabledLayers and DisabledExtensions are blacklists applied to
	// everything the application or this config enables.
	DisabledLayers     []string
	DisabledExtensions []string

	// Device selects the physical device: a numeric index, or one of
	// integrated/discrete/virtual/cpu. Empty picks the first device.
	Device string
}

// ConfigFromEnv reads the operator configuration from the environment.
func ConfigFromEnv() Config {
	cfg := Config{Version: VersionNone}

	if envy.Get("VKCORE_LOG", "") == "verbose" {
		cfg.Verbose = true
	}
	if raw := envy.Get("VKCORE_VULKAN_VERSION", ""); raw != "" {
		cfg.Version = parseVersion(raw)
		if cfg.Version == VersionNone {
			log.Warnf("invalid VKCORE_VULKAN_VERSION %q", raw)
		}
	}
	cfg.EnabledLayers = splitList(envy.Get("VKCORE_ENABLE_LAYERS", ""))
	cfg.EnabledInstanceExtensions = splitList(envy.Get("VKCORE_ENABLE_INSTANCE_EXTENSIONS", ""))
	cfg.EnabledExtensions = splitList(envy.Get("VKCORE_ENABLE_EXTENSIONS", ""))
	cfg.DisabledLayers = splitList(envy.Get("VKCORE_DISABLE_LAYERS", ""))
	cfg.DisabledExtensions = splitList(envy.Get("VKCORE_DISABLE_EXTENSIONS", ""))
	cfg.Device = envy.Get("VKCORE_DEVICE", "")

	return cfg
}

// parseVersion accepts "major.minor" option values. Anything else maps to
// VersionNone.
func parseVersion(raw string) Version {
	parts := strings.SplitN(raw, ".", 2)
	if len(parts) != 2 {
		return VersionNone
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return VersionNone
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return VersionNone
	}
	return MakeVersion(major, minor)
}

func (c Config) applyLogging() {
	if c.Verbose {
		log.SetLevel(log.DebugLevel)
	}
}
