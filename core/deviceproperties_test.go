package core

import (
	"reflect"
	"testing"
)

func twoDeviceProvider() *fakeProvider {
	p := newFakeProvider()
	p.devices = append(p.devices, fakeDevice{
		record: DeviceRecord{
			APIVersion: Vk10.Packed(),
			VendorID:   0x8086,
			DeviceID:   0x3e9b,
			DeviceType: DeviceTypeIntegratedGpu,
			DeviceName: "Fake iGPU",
			MemorySize: 2 << 30,
		},
		families: []QueueFamilyRecord{
			{QueueFlags: QueueGraphicsBit | QueueComputeBit | QueueTransferBit, QueueCount: 1},
		},
	})
	return p
}

func TestEnumerateDevices(t *testing.T) {
	p := twoDeviceProvider()
	instance := newTestInstance(t, p, Config{})

	devices := EnumerateDevices(instance)
	if len(devices) != 2 {
		t.Fatalf("found %d devices, want 2", len(devices))
	}
	if devices[0].Name() != "Fake GPU" || devices[1].Name() != "Fake iGPU" {
		t.Errorf("devices = %q, %q", devices[0].Name(), devices[1].Name())
	}
}

func TestDevicePropertiesLazyCaching(t *testing.T) {
	p := newFakeProvider()
	instance := newTestInstance(t, p, Config{})
	device := EnumerateDevices(instance)[0]
	handle := device.Handle()

	if p.propertyCalls[handle] != 0 {
		t.Fatal("properties fetched before first access")
	}
	if device.Name() != "Fake GPU" {
		t.Errorf("Name() = %q", device.Name())
	}
	if device.APIVersion() != Vk11 {
		t.Errorf("APIVersion() = %s", device.APIVersion())
	}
	if device.DriverVersion() != 42 {
		t.Errorf("DriverVersion() = %d", device.DriverVersion())
	}
	if device.Type() != DeviceTypeDiscreteGpu {
		t.Errorf("Type() = %s", device.Type())
	}
	if p.propertyCalls[handle] != 1 {
		t.Errorf("properties fetched %d times, want once", p.propertyCalls[handle])
	}

	if device.QueueFamilyCount() != 2 {
		t.Errorf("QueueFamilyCount() = %d", device.QueueFamilyCount())
	}
	device.QueueFamilyProperties()
	// One count call plus one fill call, cached afterwards.
	if p.familyCalls[handle] != 2 {
		t.Errorf("families fetched with %d calls, want 2", p.familyCalls[handle])
	}
}

func TestDevicePropertiesQueueFamilies(t *testing.T) {
	p := newFakeProvider()
	instance := newTestInstance(t, p, Config{})
	device := EnumerateDevices(instance)[0]

	if got := device.QueueFamilySize(0); got != 16 {
		t.Errorf("QueueFamilySize(0) = %d", got)
	}
	if got := device.QueueFamilyFlags(1); got != QueueTransferBit {
		t.Errorf("QueueFamilyFlags(1) = %s", got)
	}

	failures := captureFailures(t)
	if got := device.QueueFamilySize(5); got != 0 {
		t.Errorf("QueueFamilySize(5) = %d", got)
	}
	if got := device.QueueFamilyFlags(5); got != 0 {
		t.Errorf("QueueFamilyFlags(5) = %s", got)
	}
	if len(*failures) != 2 {
		t.Errorf("recorded %d failures, want 2", len(*failures))
	}
}

func TestDevicePropertiesExtensions(t *testing.T) {
	p := newFakeProvider()
	p.devices[0].extensions = []ExtensionRecord{
		{ExtensionName: "VK_KHR_swapchain", SpecVersion: 70},
		{ExtensionName: "VK_KHR_maintenance1", SpecVersion: 2},
	}
	instance := newTestInstance(t, p, Config{})
	device := EnumerateDevices(instance)[0]

	extensions := device.EnumerateExtensionProperties()
	want := []string{"VK_KHR_maintenance1", "VK_KHR_swapchain"}
	if !reflect.DeepEqual(extensions.Names(), want) {
		t.Errorf("Names() = %v", extensions.Names())
	}
	if got := extensions.Revision("VK_KHR_swapchain"); got != 70 {
		t.Errorf("Revision(swapchain) = %d", got)
	}
}

func TestDevicePropertiesInfo(t *testing.T) {
	p := newFakeProvider()
	p.devices[0].extensions = []ExtensionRecord{
		{ExtensionName: "VK_KHR_swapchain", SpecVersion: 70},
	}
	instance := newTestInstance(t, p, Config{})
	device := EnumerateDevices(instance)[0]

	info := device.Info()
	want := PhysicalDeviceInfo{
		DeviceID:      0x1f82,
		VendorID:      0x10de,
		DriverVersion: 42,
		Name:          "Fake GPU",
		APIVersion:    "1.1",
		Type:          "DiscreteGpu",
		Memory:        8 << 30,
		Extensions:    []string{"VK_KHR_swapchain"},
	}
	if !reflect.DeepEqual(info, want) {
		t.Errorf("Info() = %+v", info)
	}
}

func TestWrapDeviceProperties(t *testing.T) {
	p := newFakeProvider()
	instance := newTestInstance(t, p, Config{})

	device := WrapDeviceProperties(instance, 1)
	if device.Name() != "Fake GPU" {
		t.Errorf("Name() = %q", device.Name())
	}
}
