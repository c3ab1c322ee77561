package core

import "unsafe"

// Result is a native API result code.
type Result int32

// Result codes the core inspects. The full native set is wider; anything
// not listed here still round-trips through the provider untouched.
const (
	Success              Result = 0
	NotReady             Result = 1
	Timeout              Result = 2
	Incomplete           Result = 5
	ErrOutOfHostMemory   Result = -1
	ErrOutOfDeviceMemory Result = -2
	ErrInitFailed        Result = -3
	ErrDeviceLost        Result = -4
	ErrLayerNotPresent   Result = -6
	ErrExtNotPresent     Result = -7
	ErrFeatureNotPresent Result = -8
	ErrIncompatibleDrv   Result = -9
)

func (r Result) Error() string {
	switch r {
	case Success:
		return "SUCCESS"
	case NotReady:
		return "NOT READY"
	case Timeout:
		return "TIMEOUT"
	case Incomplete:
		return "INCOMPLETE"
	case ErrOutOfHostMemory:
		return "OUT OF HOST MEMORY"
	case ErrOutOfDeviceMemory:
		return "OUT OF DEVICE MEMORY"
	case ErrInitFailed:
		return "INITIALIZATION FAILED"
	case ErrDeviceLost:
		return "DEVICE LOST"
	case ErrLayerNotPresent:
		return "LAYER NOT PRESENT"
	case ErrExtNotPresent:
		return "EXTENSION NOT PRESENT"
	case ErrFeatureNotPresent:
		return "FEATURE NOT PRESENT"
	case ErrIncompatibleDrv:
		return "INCOMPATIBLE DRIVER"
	}
	return "UNKNOWN RESULT"
}

// Opaque native handles. The zero value is the null handle.
type (
	InstanceHandle       uintptr
	PhysicalDeviceHandle uintptr
	DeviceHandle         uintptr
	SurfaceHandle        uintptr

	// ProcAddr is an opaque resolved entry point. Zero means the symbol
	// could not be resolved for the given handle.
	ProcAddr uintptr
)

// HandleFlags describe the ownership disposition of a context object.
type HandleFlags uint8

// HandleFlagDestroyOnDestruction makes the context object destroy its
// native handle when Destroy is called.
const HandleFlagDestroyOnDestruction HandleFlags = 1 << 0

// StructureType tags the creation-parameter structs, matching the native
// ABI values.
type StructureType uint32

const (
	StructureTypeApplicationInfo       StructureType = 0
	StructureTypeInstanceCreateInfo    StructureType = 1
	StructureTypeDeviceQueueCreateInfo StructureType = 2
	StructureTypeDeviceCreateInfo      StructureType = 3
)

// QueueFlags describe the capabilities of a queue family.
type QueueFlags uint32

const (
	QueueGraphicsBit      QueueFlags = 0x01
	QueueComputeBit       QueueFlags = 0x02
	QueueTransferBit      QueueFlags = 0x04
	QueueSparseBindingBit QueueFlags = 0x08
	QueueProtectedBit     QueueFlags = 0x10
)

func (f QueueFlags) String() string {
	var out string
	add := func(bit QueueFlags, name string) {
		if f&bit == 0 {
			return
		}
		if out != "" {
			out += "|"
		}
		out += name
	}
	add(QueueGraphicsBit, "Graphics")
	add(QueueComputeBit, "Compute")
	add(QueueTransferBit, "Transfer")
	add(QueueSparseBindingBit, "SparseBinding")
	add(QueueProtectedBit, "Protected")
	if out == "" {
		return "QueueFlags{}"
	}
	return out
}

// DeviceType classifies a physical device, matching the native values.
type DeviceType uint32

const (
	DeviceTypeOther         DeviceType = 0
	DeviceTypeIntegratedGpu DeviceType = 1
	DeviceTypeDiscreteGpu   DeviceType = 2
	DeviceTypeVirtualGpu    DeviceType = 3
	DeviceTypeCpu           DeviceType = 4
)

func (t DeviceType) String() string {
	switch t {
	case DeviceTypeIntegratedGpu:
		return "IntegratedGpu"
	case DeviceTypeDiscreteGpu:
		return "DiscreteGpu"
	case DeviceTypeVirtualGpu:
		return "VirtualGpu"
	case DeviceTypeCpu:
		return "Cpu"
	}
	return "Other"
}

// ApplicationInfo mirrors the native application-metadata struct embedded
// in the instance creation parameters. Strings must be null-terminated.
type ApplicationInfo struct {
	SType              StructureType
	PNext              unsafe.Pointer
	PApplicationName   string
	ApplicationVersion uint32
	PEngineName        string
	EngineVersion      uint32
	APIVersion         uint32
}

// InstanceInfo mirrors the native instance creation-parameter struct. Every
// field the native API inspects is either zeroed or set explicitly by the
// builder; the embedded name arrays must stay valid until the instance
// constructor consumes them.
type InstanceInfo struct {
	SType                   StructureType
	PNext                   unsafe.Pointer
	Flags                   InstanceCreateFlags
	PApplicationInfo        *ApplicationInfo
	EnabledLayerCount       uint32
	PpEnabledLayerNames     []string
	EnabledExtensionCount   uint32
	PpEnabledExtensionNames []string
}

// DeviceQueueInfo mirrors the native queue request record. PQueuePriorities
// points into the builder's fixed-capacity priority storage and stays valid
// for the builder's lifetime.
type DeviceQueueInfo struct {
	SType            StructureType
	PNext            unsafe.Pointer
	QueueFamilyIndex uint32
	QueueCount       uint32
	PQueuePriorities []float32
}

// DeviceInfo mirrors the native device creation-parameter struct.
type DeviceInfo struct {
	SType                   StructureType
	PNext                   unsafe.Pointer
	Flags                   DeviceCreateFlags
	QueueCreateInfoCount    uint32
	PQueueCreateInfos       []DeviceQueueInfo
	EnabledExtensionCount   uint32
	PpEnabledExtensionNames []string
}

// LayerRecord is one enumerated layer as reported by the provider.
type LayerRecord struct {
	LayerName             string
	SpecVersion           uint32
	ImplementationVersion uint32
	Description           string
}

// ExtensionRecord is one enumerated extension as reported by the provider.
type ExtensionRecord struct {
	ExtensionName string
	SpecVersion   uint32
}

// QueueFamilyRecord is one enumerated queue family.
type QueueFamilyRecord struct {
	QueueFlags         QueueFlags
	QueueCount         uint32
	TimestampValidBits uint32
}

// DeviceRecord carries the properties of a physical device. APIVersion and
// DriverVersion use the native packed representation.
type DeviceRecord struct {
	APIVersion    uint32
	DriverVersion uint32
	VendorID      uint32
	DeviceID      uint32
	DeviceType    DeviceType
	DeviceName    string
	MemorySize    uint64
}
