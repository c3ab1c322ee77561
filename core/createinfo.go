package core

import log "github.com/sirupsen/logrus"

// InstanceCreateFlags alter instance creation behaviour.
type InstanceCreateFlags uint32

// FlagNoImplicitExtensions disables the implicit enabling of extensions
// the core itself benefits from. The bit is ours, not the native API's,
// and is masked out of the creation parameters.
const FlagNoImplicitExtensions InstanceCreateFlags = 1 << 31

// InstanceCreateInfo accumulates everything instance creation needs. It
// holds the native creation-parameter struct by value; every name that
// ends up referenced from it is stored null-terminated in storage owned by
// the builder, so the embedded arrays stay valid until NewInstance
// consumes them.
type InstanceCreateInfo struct {
	info            InstanceInfo
	applicationInfo ApplicationInfo

	disabledLayers     []string
	disabledExtensions []string

	verbose bool
	version Version
	config  Config
}

// NewInstanceCreateInfo merges the operator configuration with what the
// provider reports. The extension properties are only consulted for the
// implicit extensions; pass nil to have them fetched on demand.
func NewInstanceCreateInfo(p Provider, cfg Config, extensionProperties *ExtensionProperties, flags InstanceCreateFlags) *InstanceCreateInfo {
	cfg.applyLogging()

	ci := &InstanceCreateInfo{
		verbose: cfg.Verbose,
		version: VersionNone,
		config:  cfg,
	}
	ci.info.SType = StructureTypeInstanceCreateInfo
	ci.info.Flags = flags &^ FlagNoImplicitExtensions
	ci.info.PApplicationInfo = &ci.applicationInfo
	ci.applicationInfo.SType = StructureTypeApplicationInfo
	ci.applicationInfo.PEngineName = "vkcore\x00"

	// A forced version clamps what the loader reports; it can lower the
	// negotiated version but never raise it past actual support.
	ci.version = enumerateInstanceVersion(p)
	if cfg.Version != VersionNone {
		ci.version = minVersion(ci.version, cfg.Version)
	}
	ci.applicationInfo.APIVersion = ci.version.Packed()

	// Blacklists are sorted up front; every add below and later checks
	// them with a binary search.
	ci.disabledLayers = sortedCopy(cfg.DisabledLayers)
	ci.disabledExtensions = sortedCopy(cfg.DisabledExtensions)

	ci.AddEnabledLayers(cfg.EnabledLayers...)
	ci.AddEnabledExtensionNames(cfg.EnabledInstanceExtensions...)

	if flags&FlagNoImplicitExtensions == 0 {
		properties := extensionProperties
		if properties == nil {
			properties = EnumerateInstanceExtensionProperties(p)
		}

		// Only below 1.1, where the extended property queries aren't
		// core yet.
		if !ci.version.AtLeast(Vk11) && properties.IsSupported(KHRGetPhysicalDeviceProperties2.Name()) {
			ci.AddEnabledExtensions(KHRGetPhysicalDeviceProperties2)
		}
	}

	return ci
}

// NewInstanceCreateInfoRaw wraps an externally prepared native struct. No
// defaults are applied and no state is attached.
func NewInstanceCreateInfoRaw(info InstanceInfo) *InstanceCreateInfo {
	return &InstanceCreateInfo{info: info, version: VersionNone}
}

// SetApplicationInfo records the application name and version passed to
// the driver. An empty name clears the field.
func (ci *InstanceCreateInfo) SetApplicationInfo(name string, version uint32) *InstanceCreateInfo {
	if name != "" {
		ci.applicationInfo.PApplicationName = safeString(name)
	} else {
		ci.applicationInfo.PApplicationName = ""
	}
	ci.applicationInfo.ApplicationVersion = version
	return ci
}

// AddEnabledLayers appends layers to the creation parameters, skipping any
// that the operator disabled.
func (ci *InstanceCreateInfo) AddEnabledLayers(layers ...string) *InstanceCreateInfo {
	for _, layer := range layers {
		name := trimNul(layer)
		if containsSorted(ci.disabledLayers, name) {
			continue
		}
		ci.info.PpEnabledLayerNames = append(ci.info.PpEnabledLayerNames, safeString(name))
	}
	ci.info.EnabledLayerCount = uint32(len(ci.info.PpEnabledLayerNames))
	return ci
}

// AddEnabledExtensionNames appends extensions by name, skipping any that
// the operator disabled. Names need not be known to the registry.
func (ci *InstanceCreateInfo) AddEnabledExtensionNames(extensions ...string) *InstanceCreateInfo {
	for _, extension := range extensions {
		name := trimNul(extension)
		if containsSorted(ci.disabledExtensions, name) {
			continue
		}
		ci.info.PpEnabledExtensionNames = append(ci.info.PpEnabledExtensionNames, safeString(name))
	}
	ci.info.EnabledExtensionCount = uint32(len(ci.info.PpEnabledExtensionNames))
	return ci
}

// AddEnabledExtensions appends registered extensions, applying the same
// blacklist as the name-based variant.
func (ci *InstanceCreateInfo) AddEnabledExtensions(extensions ...InstanceExtension) *InstanceCreateInfo {
	for _, extension := range extensions {
		if containsSorted(ci.disabledExtensions, extension.Name()) {
			continue
		}
		ci.info.PpEnabledExtensionNames = append(ci.info.PpEnabledExtensionNames, safeString(extension.Name()))
	}
	ci.info.EnabledExtensionCount = uint32(len(ci.info.PpEnabledExtensionNames))
	return ci
}

// Info exposes the accumulated native creation parameters.
func (ci *InstanceCreateInfo) Info() *InstanceInfo {
	return &ci.info
}

func (ci *InstanceCreateInfo) logEnabled() {
	log.Debugf("instance version: %s", ci.version)
	if ci.info.EnabledLayerCount != 0 {
		log.Debug("enabled layers:")
		for _, layer := range ci.info.PpEnabledLayerNames {
			log.Debugf("    %s", trimNul(layer))
		}
	}
	if ci.info.EnabledExtensionCount != 0 {
		log.Debug("enabled instance extensions:")
		for _, extension := range ci.info.PpEnabledExtensionNames {
			log.Debugf("    %s", trimNul(extension))
		}
	}
}
