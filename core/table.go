package core

// Entry points resolved into the per-context tables.
var (
	instanceSymbols = []string{
		"vkDestroyInstance",
		"vkEnumeratePhysicalDevices",
		"vkGetPhysicalDeviceProperties",
		"vkGetPhysicalDeviceQueueFamilyProperties",
		"vkEnumerateDeviceExtensionProperties",
		"vkCreateDevice",
		"vkGetDeviceProcAddr",
	}
	deviceSymbols = []string{
		"vkDestroyDevice",
		"vkGetDeviceQueue",
		"vkDeviceWaitIdle",
	}
)

// InstanceTable is the function-pointer table bound to one instance
// handle: the entry points resolved against that handle plus dispatch
// closures the context object calls through. A table is valid exactly as
// long as the handle it was loaded for.
type InstanceTable struct {
	DestroyInstance                        func(InstanceHandle)
	EnumeratePhysicalDevices               func(InstanceHandle, *uint32, []PhysicalDeviceHandle) Result
	GetPhysicalDeviceProperties            func(PhysicalDeviceHandle, *DeviceRecord)
	GetPhysicalDeviceQueueFamilyProperties func(PhysicalDeviceHandle, *uint32, []QueueFamilyRecord)
	EnumerateDeviceExtensionProperties     func(PhysicalDeviceHandle, string, *uint32, []ExtensionRecord) Result
	CreateDevice                           func(PhysicalDeviceHandle, *DeviceInfo) (DeviceHandle, Result)
	GetDeviceProcAddr                      func(DeviceHandle, string) ProcAddr

	addrs map[string]ProcAddr
}

func newInstanceTable(p Provider, handle InstanceHandle) *InstanceTable {
	t := &InstanceTable{
		DestroyInstance:                        p.DestroyInstance,
		EnumeratePhysicalDevices:               p.EnumeratePhysicalDevices,
		GetPhysicalDeviceProperties:            p.GetPhysicalDeviceProperties,
		GetPhysicalDeviceQueueFamilyProperties: p.GetPhysicalDeviceQueueFamilyProperties,
		EnumerateDeviceExtensionProperties:     p.EnumerateDeviceExtensionProperties,
		CreateDevice:                           p.CreateDevice,
		GetDeviceProcAddr:                      p.DeviceProcAddr,
		addrs:                                  make(map[string]ProcAddr, len(instanceSymbols)),
	}
	for _, symbol := range instanceSymbols {
		t.addrs[symbol] = p.InstanceProcAddr(handle, symbol)
	}
	return t
}

// Addr returns the resolved entry point for a symbol, zero if the
// provider could not resolve it.
func (t *InstanceTable) Addr(symbol string) ProcAddr {
	return t.addrs[symbol]
}

// DeviceTable is the function-pointer table bound to one device handle.
type DeviceTable struct {
	DestroyDevice func(DeviceHandle)

	addrs map[string]ProcAddr
}

// newDeviceTable resolves device-level entry points through the owning
// instance's GetDeviceProcAddr, binding them to this specific handle.
func newDeviceTable(p Provider, instanceTable *InstanceTable, handle DeviceHandle) *DeviceTable {
	t := &DeviceTable{
		DestroyDevice: p.DestroyDevice,
		addrs:         make(map[string]ProcAddr, len(deviceSymbols)),
	}
	for _, symbol := range deviceSymbols {
		t.addrs[symbol] = instanceTable.GetDeviceProcAddr(handle, symbol)
	}
	return t
}

// Addr returns the resolved entry point for a symbol, zero if the
// provider could not resolve it.
func (t *DeviceTable) Addr(symbol string) ProcAddr {
	return t.addrs[symbol]
}

// Process-wide tables, written only by the explicit populate calls.
var (
	globalInstanceTable InstanceTable
	globalDeviceTable   DeviceTable
)

// GlobalInstance returns the process-wide instance table. See
// Instance.PopulateGlobalFunctionPointers for the single-writer contract.
func GlobalInstance() *InstanceTable {
	return &globalInstanceTable
}

// GlobalDevice returns the process-wide device table. See
// Device.PopulateGlobalFunctionPointers for the single-writer contract.
func GlobalDevice() *DeviceTable {
	return &globalDeviceTable
}
