package core

import log "github.com/sirupsen/logrus"

// DeviceCreateFlags alter device creation behaviour. The native API keeps
// them reserved; the type exists for the raw constructor.
type DeviceCreateFlags uint32

// maxQueuePriorities bounds the total number of queue priorities a single
// builder can hold. The priorities live in a fixed array so the slices
// handed to the driver never move when more queues are added.
const maxQueuePriorities = 32

// DeviceCreateInfo accumulates everything device creation needs. Like the
// instance variant it owns the storage behind every name and priority the
// embedded native struct references.
//
// A fresh builder carries an implicit request for a single queue of family
// zero, so that creation never fails for the common case of callers that
// don't care which queue they get. The first explicit AddQueues or
// AddQueueInfo call replaces that request.
type DeviceCreateInfo struct {
	info DeviceInfo

	properties *DeviceProperties
	version    Version

	disabledExtensions []string

	queuePriorities   [maxQueuePriorities]float32
	nextQueuePriority int
	implicitQueue     bool

	verbose bool
}

// NewDeviceCreateInfo seeds a builder for the given physical device. The
// API version is negotiated down to whichever of the instance and the
// device reports the lower one, unless the configuration forces a version.
func NewDeviceCreateInfo(deviceProperties *DeviceProperties, cfg Config) *DeviceCreateInfo {
	ci := &DeviceCreateInfo{
		properties: deviceProperties,
		verbose:    cfg.Verbose,
	}
	ci.info.SType = StructureTypeDeviceCreateInfo

	instance := deviceProperties.instance
	ci.version = minVersion(instance.Version(), deviceProperties.APIVersion())
	if cfg.Version != VersionNone {
		ci.version = minVersion(ci.version, cfg.Version)
	}

	ci.disabledExtensions = sortedCopy(cfg.DisabledExtensions)

	ci.AddEnabledExtensionNames(cfg.EnabledExtensions...)

	// Implicit default: one queue of family 0, full priority. Replaced
	// wholesale by the first explicit queue request.
	ci.queuePriorities[0] = 1.0
	ci.nextQueuePriority = 1
	ci.implicitQueue = true
	ci.info.PQueueCreateInfos = []DeviceQueueInfo{{
		SType:            StructureTypeDeviceQueueCreateInfo,
		QueueFamilyIndex: 0,
		QueueCount:       1,
		PQueuePriorities: ci.queuePriorities[0:1],
	}}
	ci.info.QueueCreateInfoCount = 1

	return ci
}

// NewDeviceCreateInfoRaw wraps an externally prepared native struct for
// the given physical device. No implicit queue is added and no defaults
// are applied.
func NewDeviceCreateInfoRaw(deviceProperties *DeviceProperties, info DeviceInfo) *DeviceCreateInfo {
	return &DeviceCreateInfo{info: info, properties: deviceProperties, version: VersionNone}
}

// AddQueues requests queues of the given family, one per priority. The
// priorities are copied into storage owned by the builder; the caller's
// slice can be reused. At least one priority is required.
func (ci *DeviceCreateInfo) AddQueues(family uint32, priorities []float32) *DeviceCreateInfo {
	if len(priorities) == 0 {
		assertf("core.DeviceCreateInfo.AddQueues(): at least one queue priority has to be specified")
		return ci
	}

	if ci.implicitQueue {
		ci.info.PQueueCreateInfos = ci.info.PQueueCreateInfos[:0]
		ci.info.QueueCreateInfoCount = 0
		ci.nextQueuePriority = 0
		ci.implicitQueue = false
	}

	if ci.nextQueuePriority+len(priorities) > maxQueuePriorities {
		internalAssertf("core: queue priority storage exhausted, %d priorities over a capacity of %d",
			ci.nextQueuePriority+len(priorities), maxQueuePriorities)
		return ci
	}

	at := ci.nextQueuePriority
	copy(ci.queuePriorities[at:], priorities)
	ci.nextQueuePriority += len(priorities)

	ci.info.PQueueCreateInfos = append(ci.info.PQueueCreateInfos, DeviceQueueInfo{
		SType:            StructureTypeDeviceQueueCreateInfo,
		QueueFamilyIndex: family,
		QueueCount:       uint32(len(priorities)),
		PQueuePriorities: ci.queuePriorities[at:ci.nextQueuePriority],
	})
	ci.info.QueueCreateInfoCount = uint32(len(ci.info.PQueueCreateInfos))
	return ci
}

// AddQueueInfo appends an externally prepared queue request. The caller is
// responsible for keeping the referenced priority storage alive.
func (ci *DeviceCreateInfo) AddQueueInfo(info DeviceQueueInfo) *DeviceCreateInfo {
	if ci.implicitQueue {
		ci.info.PQueueCreateInfos = ci.info.PQueueCreateInfos[:0]
		ci.info.QueueCreateInfoCount = 0
		ci.nextQueuePriority = 0
		ci.implicitQueue = false
	}

	ci.info.PQueueCreateInfos = append(ci.info.PQueueCreateInfos, info)
	ci.info.QueueCreateInfoCount = uint32(len(ci.info.PQueueCreateInfos))
	return ci
}

// AddEnabledExtensionNames appends device extensions by name, skipping any
// that the operator disabled. Names need not be known to the registry.
func (ci *DeviceCreateInfo) AddEnabledExtensionNames(extensions ...string) *DeviceCreateInfo {
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

// AddEnabledExtensions appends registered device extensions, applying the
// same blacklist as the name-based variant.
func (ci *DeviceCreateInfo) AddEnabledExtensions(extensions ...Extension) *DeviceCreateInfo {
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
func (ci *DeviceCreateInfo) Info() *DeviceInfo {
	return &ci.info
}

func (ci *DeviceCreateInfo) logEnabled() {
	log.Debugf("device version: %s", ci.version)
	if ci.info.EnabledExtensionCount != 0 {
		log.Debug("enabled device extensions:")
		for _, extension := range ci.info.PpEnabledExtensionNames {
			log.Debugf("    %s", trimNul(extension))
		}
	}
}
