package core

import "testing"

// fakeDevice is one physical device the fake provider reports.
type fakeDevice struct {
	record     DeviceRecord
	families   []QueueFamilyRecord
	extensions []ExtensionRecord
}

// fakeProvider is an in-memory Provider for tests. Handles are small
// tagged integers: physical devices count from 1, instances from 0x100,
// devices from 0x200.
type fakeProvider struct {
	instanceVersion uint32
	versionResult   Result

	layers     []LayerRecord
	extensions map[string][]ExtensionRecord

	devices []fakeDevice

	createInstanceResult Result
	createDeviceResult   Result

	instancesCreated int
	devicesCreated   int

	lastInstanceInfo *InstanceInfo
	lastDeviceInfo   *DeviceInfo

	destroyedInstances []InstanceHandle
	destroyedDevices   []DeviceHandle

	propertyCalls map[PhysicalDeviceHandle]int
	familyCalls   map[PhysicalDeviceHandle]int
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		instanceVersion: Vk11.Packed(),
		extensions:      map[string][]ExtensionRecord{},
		devices: []fakeDevice{{
			record: DeviceRecord{
				APIVersion:    Vk11.Packed(),
				DriverVersion: 42,
				VendorID:      0x10de,
				DeviceID:      0x1f82,
				DeviceType:    DeviceTypeDiscreteGpu,
				DeviceName:    "Fake GPU",
				MemorySize:    8 << 30,
			},
			families: []QueueFamilyRecord{
				{QueueFlags: QueueGraphicsBit | QueueComputeBit | QueueTransferBit, QueueCount: 16},
				{QueueFlags: QueueTransferBit, QueueCount: 2},
			},
		}},
		propertyCalls: map[PhysicalDeviceHandle]int{},
		familyCalls:   map[PhysicalDeviceHandle]int{},
	}
}

func (p *fakeProvider) InstanceVersion() (uint32, Result) {
	if p.versionResult != Success {
		return 0, p.versionResult
	}
	return p.instanceVersion, Success
}

func (p *fakeProvider) EnumerateInstanceLayerProperties(count *uint32, properties []LayerRecord) Result {
	if properties == nil {
		*count = uint32(len(p.layers))
		return Success
	}
	*count = uint32(copy(properties, p.layers))
	return Success
}

func (p *fakeProvider) EnumerateInstanceExtensionProperties(layer string, count *uint32, properties []ExtensionRecord) Result {
	list := p.extensions[layer]
	if properties == nil {
		*count = uint32(len(list))
		return Success
	}
	*count = uint32(copy(properties, list))
	return Success
}

func (p *fakeProvider) CreateInstance(info *InstanceInfo) (InstanceHandle, Result) {
	p.lastInstanceInfo = info
	if p.createInstanceResult != Success {
		return 0, p.createInstanceResult
	}
	p.instancesCreated++
	return InstanceHandle(0x100 + p.instancesCreated), Success
}

func (p *fakeProvider) DestroyInstance(handle InstanceHandle) {
	p.destroyedInstances = append(p.destroyedInstances, handle)
}

func (p *fakeProvider) EnumeratePhysicalDevices(instance InstanceHandle, count *uint32, devices []PhysicalDeviceHandle) Result {
	if devices == nil {
		*count = uint32(len(p.devices))
		return Success
	}
	n := len(p.devices)
	if n > len(devices) {
		n = len(devices)
	}
	for i := 0; i < n; i++ {
		devices[i] = PhysicalDeviceHandle(i + 1)
	}
	*count = uint32(n)
	return Success
}

func (p *fakeProvider) GetPhysicalDeviceProperties(device PhysicalDeviceHandle, properties *DeviceRecord) {
	p.propertyCalls[device]++
	*properties = p.devices[device-1].record
}

func (p *fakeProvider) GetPhysicalDeviceQueueFamilyProperties(device PhysicalDeviceHandle, count *uint32, properties []QueueFamilyRecord) {
	p.familyCalls[device]++
	families := p.devices[device-1].families
	if properties == nil {
		*count = uint32(len(families))
		return
	}
	*count = uint32(copy(properties, families))
}

func (p *fakeProvider) EnumerateDeviceExtensionProperties(device PhysicalDeviceHandle, layer string, count *uint32, properties []ExtensionRecord) Result {
	var list []ExtensionRecord
	if layer == "" {
		list = p.devices[device-1].extensions
	}
	if properties == nil {
		*count = uint32(len(list))
		return Success
	}
	*count = uint32(copy(properties, list))
	return Success
}

func (p *fakeProvider) CreateDevice(device PhysicalDeviceHandle, info *DeviceInfo) (DeviceHandle, Result) {
	p.lastDeviceInfo = info
	if p.createDeviceResult != Success {
		return 0, p.createDeviceResult
	}
	p.devicesCreated++
	return DeviceHandle(0x200 + p.devicesCreated), Success
}

func (p *fakeProvider) DestroyDevice(handle DeviceHandle) {
	p.destroyedDevices = append(p.destroyedDevices, handle)
}

func (p *fakeProvider) InstanceProcAddr(instance InstanceHandle, name string) ProcAddr {
	if instance == 0 {
		return 0
	}
	return ProcAddr(0x1000 + len(name))
}

func (p *fakeProvider) DeviceProcAddr(device DeviceHandle, name string) ProcAddr {
	if device == 0 {
		return 0
	}
	return ProcAddr(0x2000 + len(name))
}

// captureFailures swaps the failure handler for one that records instead
// of terminating, restoring it when the test finishes.
func captureFailures(t *testing.T) *[]string {
	t.Helper()
	var failures []string
	prev := failureHandler
	failureHandler = func(msg string) {
		failures = append(failures, msg)
	}
	t.Cleanup(func() { failureHandler = prev })
	return &failures
}

// newTestInstance creates an owning instance over the fake with the given
// configuration.
func newTestInstance(t *testing.T, p *fakeProvider, cfg Config) *Instance {
	t.Helper()
	if cfg.Version == 0 {
		cfg.Version = VersionNone
	}
	instance := NewInstance(p, NewInstanceCreateInfo(p, cfg, nil, 0))
	if instance.Handle() == 0 {
		t.Fatal("fake instance creation failed")
	}
	t.Cleanup(instance.Destroy)
	return instance
}
