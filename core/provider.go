package core

// Provider is the low-level capability provider the core negotiates
// against. The driver package implements it on top of the real Vulkan
// loader; tests substitute an in-memory one.
//
// Enumerations follow the native two-call protocol: with a nil output
// slice only the count is written, a second call fills the slice. The
// driver contract guarantees the count stays stable between the two calls
// absent concurrent mutation; the core treats a mismatch as an internal
// consistency failure.
type Provider interface {
	// InstanceVersion returns the packed API version the loader reports.
	InstanceVersion() (uint32, Result)

	EnumerateInstanceLayerProperties(count *uint32, properties []LayerRecord) Result

	// EnumerateInstanceExtensionProperties lists extensions provided by
	// the given layer, or the implementation itself when layer is empty.
	EnumerateInstanceExtensionProperties(layer string, count *uint32, properties []ExtensionRecord) Result

	CreateInstance(info *InstanceInfo) (InstanceHandle, Result)
	DestroyInstance(handle InstanceHandle)

	EnumeratePhysicalDevices(instance InstanceHandle, count *uint32, devices []PhysicalDeviceHandle) Result
	GetPhysicalDeviceProperties(device PhysicalDeviceHandle, properties *DeviceRecord)
	GetPhysicalDeviceQueueFamilyProperties(device PhysicalDeviceHandle, count *uint32, properties []QueueFamilyRecord)
	EnumerateDeviceExtensionProperties(device PhysicalDeviceHandle, layer string, count *uint32, properties []ExtensionRecord) Result

	CreateDevice(device PhysicalDeviceHandle, info *DeviceInfo) (DeviceHandle, Result)
	DestroyDevice(handle DeviceHandle)

	// InstanceProcAddr resolves an entry point against an instance handle.
	// Zero means unresolved.
	InstanceProcAddr(instance InstanceHandle, name string) ProcAddr

	// DeviceProcAddr resolves an entry point against a device handle.
	DeviceProcAddr(device DeviceHandle, name string) ProcAddr
}
