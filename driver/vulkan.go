// Package driver implements the core capability provider on top of the
// Vulkan loader, plus the SDL bootstrap needed to get a loader entry
// point and a presentable surface.
package driver

import (
	"errors"
	"unsafe"

	vk "github.com/vulkan-go/vulkan"

	"github.com/devblok/vkcore/core"
)

// Vulkan implements core.Provider over the vulkan-go binding.
type Vulkan struct{}

// New bootstraps the binding and returns the provider. A nil procAddr
// uses the default system loader; windowed applications pass the entry
// point obtained from SDL instead.
func New(procAddr unsafe.Pointer) (*Vulkan, error) {
	if procAddr == nil {
		if err := vk.SetDefaultGetInstanceProcAddr(); err != nil {
			return nil, errors.New("vk.SetDefaultGetInstanceProcAddr(): " + err.Error())
		}
	} else {
		vk.SetGetInstanceProcAddr(procAddr)
	}
	if err := vk.Init(); err != nil {
		return nil, errors.New("vk.Init(): " + err.Error())
	}
	return &Vulkan{}, nil
}

// Handle reinterpretation between the core's opaque integers and the
// binding's pointer types. Both are the same native handle underneath.
func asVkInstance(h core.InstanceHandle) vk.Instance {
	return *(*vk.Instance)(unsafe.Pointer(&h))
}

func asVkPhysicalDevice(h core.PhysicalDeviceHandle) vk.PhysicalDevice {
	return *(*vk.PhysicalDevice)(unsafe.Pointer(&h))
}

func asVkDevice(h core.DeviceHandle) vk.Device {
	return *(*vk.Device)(unsafe.Pointer(&h))
}

func asInstanceHandle(i vk.Instance) core.InstanceHandle {
	return *(*core.InstanceHandle)(unsafe.Pointer(&i))
}

func asPhysicalDeviceHandle(d vk.PhysicalDevice) core.PhysicalDeviceHandle {
	return *(*core.PhysicalDeviceHandle)(unsafe.Pointer(&d))
}

func asDeviceHandle(d vk.Device) core.DeviceHandle {
	return *(*core.DeviceHandle)(unsafe.Pointer(&d))
}

// InstanceVersion reports the packed version the loader supports.
func (v *Vulkan) InstanceVersion() (uint32, core.Result) {
	var version uint32
	result := vk.EnumerateInstanceVersion(&version)
	return version, core.Result(result)
}

// EnumerateInstanceLayerProperties implements the two-call protocol over
// the native enumeration.
func (v *Vulkan) EnumerateInstanceLayerProperties(count *uint32, properties []core.LayerRecord) core.Result {
	if properties == nil {
		return core.Result(vk.EnumerateInstanceLayerProperties(count, nil))
	}

	layers := make([]vk.LayerProperties, len(properties))
	result := vk.EnumerateInstanceLayerProperties(count, layers)
	if result != vk.Success {
		return core.Result(result)
	}
	for i := range layers[:*count] {
		layers[i].Deref()
		properties[i] = core.LayerRecord{
			LayerName:             vk.ToString(layers[i].LayerName[:]),
			SpecVersion:           layers[i].SpecVersion,
			ImplementationVersion: layers[i].ImplementationVersion,
			Description:           vk.ToString(layers[i].Description[:]),
		}
	}
	return core.Success
}

// EnumerateInstanceExtensionProperties lists extensions of the given
// layer, or the implementation itself for an empty layer name.
func (v *Vulkan) EnumerateInstanceExtensionProperties(layer string, count *uint32, properties []core.ExtensionRecord) core.Result {
	if layer != "" {
		layer = safeString(layer)
	}
	if properties == nil {
		return core.Result(vk.EnumerateInstanceExtensionProperties(layer, count, nil))
	}

	extensions := make([]vk.ExtensionProperties, len(properties))
	result := vk.EnumerateInstanceExtensionProperties(layer, count, extensions)
	if result != vk.Success {
		return core.Result(result)
	}
	fillExtensionRecords(properties, extensions[:*count])
	return core.Success
}

// CreateInstance translates the accumulated creation parameters and
// creates the native instance, initializing the binding's dispatch for it.
func (v *Vulkan) CreateInstance(info *core.InstanceInfo) (core.InstanceHandle, core.Result) {
	appInfo := vk.ApplicationInfo{
		SType:      vk.StructureTypeApplicationInfo,
		ApiVersion: vk.MakeVersion(1, 0, 0),
	}
	if info.PApplicationInfo != nil {
		src := info.PApplicationInfo
		appInfo.PApplicationName = src.PApplicationName
		appInfo.ApplicationVersion = src.ApplicationVersion
		appInfo.PEngineName = src.PEngineName
		appInfo.EngineVersion = src.EngineVersion
		if src.APIVersion != ^uint32(0) {
			appInfo.ApiVersion = src.APIVersion
		}
	}

	instanceInfo := vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        &appInfo,
		EnabledLayerCount:       info.EnabledLayerCount,
		PpEnabledLayerNames:     info.PpEnabledLayerNames,
		EnabledExtensionCount:   info.EnabledExtensionCount,
		PpEnabledExtensionNames: info.PpEnabledExtensionNames,
	}

	var instance vk.Instance
	if result := vk.CreateInstance(&instanceInfo, nil, &instance); result != vk.Success {
		return 0, core.Result(result)
	}
	vk.InitInstance(instance)
	return asInstanceHandle(instance), core.Success
}

// DestroyInstance destroys the native instance.
func (v *Vulkan) DestroyInstance(handle core.InstanceHandle) {
	vk.DestroyInstance(asVkInstance(handle), nil)
}

// EnumeratePhysicalDevices implements the two-call protocol.
func (v *Vulkan) EnumeratePhysicalDevices(instance core.InstanceHandle, count *uint32, devices []core.PhysicalDeviceHandle) core.Result {
	if devices == nil {
		return core.Result(vk.EnumeratePhysicalDevices(asVkInstance(instance), count, nil))
	}

	native := make([]vk.PhysicalDevice, len(devices))
	result := vk.EnumeratePhysicalDevices(asVkInstance(instance), count, native)
	if result != vk.Success {
		return core.Result(result)
	}
	for i, d := range native[:*count] {
		devices[i] = asPhysicalDeviceHandle(d)
	}
	return core.Success
}

// GetPhysicalDeviceProperties fills the device record, including the
// total size across all memory heaps.
func (v *Vulkan) GetPhysicalDeviceProperties(device core.PhysicalDeviceHandle, properties *core.DeviceRecord) {
	native := asVkPhysicalDevice(device)

	var deviceProperties vk.PhysicalDeviceProperties
	vk.GetPhysicalDeviceProperties(native, &deviceProperties)
	deviceProperties.Deref()

	var memoryProperties vk.PhysicalDeviceMemoryProperties
	vk.GetPhysicalDeviceMemoryProperties(native, &memoryProperties)
	memoryProperties.Deref()
	var memory uint64
	for i := uint32(0); i < memoryProperties.MemoryHeapCount; i++ {
		memoryProperties.MemoryHeaps[i].Deref()
		memory += uint64(memoryProperties.MemoryHeaps[i].Size)
	}

	*properties = core.DeviceRecord{
		APIVersion:    deviceProperties.ApiVersion,
		DriverVersion: deviceProperties.DriverVersion,
		VendorID:      deviceProperties.VendorID,
		DeviceID:      deviceProperties.DeviceID,
		DeviceType:    core.DeviceType(deviceProperties.DeviceType),
		DeviceName:    vk.ToString(deviceProperties.DeviceName[:]),
		MemorySize:    memory,
	}
}

// GetPhysicalDeviceQueueFamilyProperties implements the two-call protocol.
func (v *Vulkan) GetPhysicalDeviceQueueFamilyProperties(device core.PhysicalDeviceHandle, count *uint32, properties []core.QueueFamilyRecord) {
	if properties == nil {
		vk.GetPhysicalDeviceQueueFamilyProperties(asVkPhysicalDevice(device), count, nil)
		return
	}

	families := make([]vk.QueueFamilyProperties, len(properties))
	vk.GetPhysicalDeviceQueueFamilyProperties(asVkPhysicalDevice(device), count, families)
	for i := range families[:*count] {
		families[i].Deref()
		properties[i] = core.QueueFamilyRecord{
			QueueFlags:         core.QueueFlags(families[i].QueueFlags),
			QueueCount:         families[i].QueueCount,
			TimestampValidBits: families[i].TimestampValidBits,
		}
	}
}

// EnumerateDeviceExtensionProperties lists device extensions of the given
// layer, or the implementation itself for an empty layer name.
func (v *Vulkan) EnumerateDeviceExtensionProperties(device core.PhysicalDeviceHandle, layer string, count *uint32, properties []core.ExtensionRecord) core.Result {
	if layer != "" {
		layer = safeString(layer)
	}
	if properties == nil {
		return core.Result(vk.EnumerateDeviceExtensionProperties(asVkPhysicalDevice(device), layer, count, nil))
	}

	extensions := make([]vk.ExtensionProperties, len(properties))
	result := vk.EnumerateDeviceExtensionProperties(asVkPhysicalDevice(device), layer, count, extensions)
	if result != vk.Success {
		return core.Result(result)
	}
	fillExtensionRecords(properties, extensions[:*count])
	return core.Success
}

// CreateDevice translates the accumulated creation parameters and creates
// the logical device.
func (v *Vulkan) CreateDevice(device core.PhysicalDeviceHandle, info *core.DeviceInfo) (core.DeviceHandle, core.Result) {
	queueInfos := make([]vk.DeviceQueueCreateInfo, len(info.PQueueCreateInfos))
	for i, q := range info.PQueueCreateInfos {
		queueInfos[i] = vk.DeviceQueueCreateInfo{
			SType:            vk.StructureTypeDeviceQueueCreateInfo,
			QueueFamilyIndex: q.QueueFamilyIndex,
			QueueCount:       q.QueueCount,
			PQueuePriorities: q.PQueuePriorities,
		}
	}

	deviceInfo := vk.DeviceCreateInfo{
		SType:                   vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount:    info.QueueCreateInfoCount,
		PQueueCreateInfos:       queueInfos,
		EnabledExtensionCount:   info.EnabledExtensionCount,
		PpEnabledExtensionNames: info.PpEnabledExtensionNames,
	}

	var handle vk.Device
	if result := vk.CreateDevice(asVkPhysicalDevice(device), &deviceInfo, nil, &handle); result != vk.Success {
		return 0, core.Result(result)
	}
	return asDeviceHandle(handle), core.Success
}

// DestroyDevice destroys the native device.
func (v *Vulkan) DestroyDevice(handle core.DeviceHandle) {
	vk.DestroyDevice(asVkDevice(handle), nil)
}

// The binding dispatches through its own resolved symbol set and does not
// expose raw function pointers, so proc resolution answers with opaque
// ordinal tokens over the symbols the binding is known to cover. A zero
// handle or an uncovered symbol resolves to zero, matching the native
// contract for unresolvable entry points.
var knownSymbols = map[string]core.ProcAddr{}

func init() {
	symbols := []string{
		"vkDestroyInstance",
		"vkEnumeratePhysicalDevices",
		"vkGetPhysicalDeviceProperties",
		"vkGetPhysicalDeviceQueueFamilyProperties",
		"vkGetPhysicalDeviceMemoryProperties",
		"vkEnumerateDeviceExtensionProperties",
		"vkEnumerateDeviceLayerProperties",
		"vkCreateDevice",
		"vkDestroyDevice",
		"vkGetDeviceProcAddr",
		"vkGetDeviceQueue",
		"vkDeviceWaitIdle",
	}
	for i, symbol := range symbols {
		knownSymbols[symbol] = core.ProcAddr(i + 1)
	}
}

// InstanceProcAddr resolves an entry point against an instance handle.
func (v *Vulkan) InstanceProcAddr(instance core.InstanceHandle, name string) core.ProcAddr {
	if instance == 0 {
		return 0
	}
	return knownSymbols[name]
}

// DeviceProcAddr resolves an entry point against a device handle.
func (v *Vulkan) DeviceProcAddr(device core.DeviceHandle, name string) core.ProcAddr {
	if device == 0 {
		return 0
	}
	return knownSymbols[name]
}

func safeString(s string) string {
	if len(s) != 0 && s[len(s)-1] == '\x00' {
		return s
	}
	return s + "\x00"
}

func fillExtensionRecords(dst []core.ExtensionRecord, src []vk.ExtensionProperties) {
	for i := range src {
		src[i].Deref()
		dst[i] = core.ExtensionRecord{
			ExtensionName: vk.ToString(src[i].ExtensionName[:]),
			SpecVersion:   src[i].SpecVersion,
		}
	}
}
