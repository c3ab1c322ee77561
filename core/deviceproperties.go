package core

// DeviceProperties is a lightweight movable handle to a physical device,
// remembering the instance it was enumerated from. Detailed properties
// and the queue-family list are fetched lazily, once, and cached for the
// object's lifetime.
type DeviceProperties struct {
	instance *Instance
	handle   PhysicalDeviceHandle

	properties    *DeviceRecord
	queueFamilies []QueueFamilyRecord
}

// WrapDeviceProperties builds a DeviceProperties around an externally
// obtained physical-device handle.
func WrapDeviceProperties(instance *Instance, handle PhysicalDeviceHandle) DeviceProperties {
	return DeviceProperties{instance: instance, handle: handle}
}

// EnumerateDevices lists all physical devices of an instance.
func EnumerateDevices(instance *Instance) []DeviceProperties {
	table := instance.table

	var count uint32
	mustSucceed("vk.EnumeratePhysicalDevices(count)", table.EnumeratePhysicalDevices(instance.handle, &count, nil))

	handles := make([]PhysicalDeviceHandle, count)
	out := make([]DeviceProperties, count)
	if count == 0 {
		return out
	}
	mustSucceed("vk.EnumeratePhysicalDevices()", table.EnumeratePhysicalDevices(instance.handle, &count, handles))
	if int(count) != len(handles) {
		internalAssertf("core: device count changed between enumeration calls, %d then %d", len(handles), count)
		return nil
	}

	// Wrapped back to front; the result order still matches enumeration.
	for i := int(count); i != 0; i-- {
		out[i-1] = DeviceProperties{instance: instance, handle: handles[i-1]}
	}
	return out
}

// Handle returns the native physical-device handle.
func (d *DeviceProperties) Handle() PhysicalDeviceHandle { return d.handle }

// Properties returns the cached device properties, fetching them on first
// access.
func (d *DeviceProperties) Properties() *DeviceRecord {
	if d.properties == nil {
		var record DeviceRecord
		d.instance.table.GetPhysicalDeviceProperties(d.handle, &record)
		d.properties = &record
	}
	return d.properties
}

// Name returns the device name.
func (d *DeviceProperties) Name() string {
	return d.Properties().DeviceName
}

// APIVersion returns the API version the device reports.
func (d *DeviceProperties) APIVersion() Version {
	return VersionFromPacked(d.Properties().APIVersion)
}

// DriverVersion returns the raw driver version.
func (d *DeviceProperties) DriverVersion() uint32 {
	return d.Properties().DriverVersion
}

// Type returns the device classification.
func (d *DeviceProperties) Type() DeviceType {
	return d.Properties().DeviceType
}

// QueueFamilyProperties returns the cached queue-family list, fetching it
// with the two-call protocol on first access.
func (d *DeviceProperties) QueueFamilyProperties() []QueueFamilyRecord {
	if d.queueFamilies == nil {
		var count uint32
		d.instance.table.GetPhysicalDeviceQueueFamilyProperties(d.handle, &count, nil)

		families := make([]QueueFamilyRecord, count)
		if count != 0 {
			d.instance.table.GetPhysicalDeviceQueueFamilyProperties(d.handle, &count, families)
			if int(count) != len(families) {
				internalAssertf("core: queue family count changed between enumeration calls, %d then %d", len(families), count)
				return nil
			}
		}
		d.queueFamilies = families
	}
	return d.queueFamilies
}

// QueueFamilyCount returns the number of queue families.
func (d *DeviceProperties) QueueFamilyCount() int {
	return len(d.QueueFamilyProperties())
}

// QueueFamilySize returns the number of queues in the given family.
func (d *DeviceProperties) QueueFamilySize(id int) uint32 {
	families := d.QueueFamilyProperties()
	if id >= len(families) {
		assertf("core.DeviceProperties.QueueFamilySize(): index %d out of range for %d entries", id, len(families))
		return 0
	}
	return families[id].QueueCount
}

// QueueFamilyFlags returns the capability flags of the given family.
func (d *DeviceProperties) QueueFamilyFlags(id int) QueueFlags {
	families := d.QueueFamilyProperties()
	if id >= len(families) {
		assertf("core.DeviceProperties.QueueFamilyFlags(): index %d out of range for %d entries", id, len(families))
		return 0
	}
	return families[id].QueueFlags
}

// EnumerateExtensionProperties queries extensions of this device plus each
// of the given layers.
func (d *DeviceProperties) EnumerateExtensionProperties(layers ...string) *ExtensionProperties {
	table := d.instance.table
	handle := d.handle
	return newExtensionProperties(layers, func(layer string, count *uint32, properties []ExtensionRecord) Result {
		return table.EnumerateDeviceExtensionProperties(handle, layer, count, properties)
	})
}

// PhysicalDeviceInfo is a serialization-friendly summary of a physical
// device, suitable for capability report dumps.
type PhysicalDeviceInfo struct {
	DeviceID      int      `json:"deviceId"`
	VendorID      int      `json:"vendorId"`
	DriverVersion int      `json:"driverVersion"`
	Name          string   `json:"name"`
	APIVersion    string   `json:"apiVersion"`
	Type          string   `json:"type"`
	Memory        uint64   `json:"memory"`
	Extensions    []string `json:"extensions"`
}

// Info collects the summary, fetching properties and extensions as needed.
func (d *DeviceProperties) Info() PhysicalDeviceInfo {
	record := d.Properties()
	return PhysicalDeviceInfo{
		DeviceID:      int(record.DeviceID),
		VendorID:      int(record.VendorID),
		DriverVersion: int(record.DriverVersion),
		Name:          record.DeviceName,
		APIVersion:    d.APIVersion().String(),
		Type:          record.DeviceType.String(),
		Memory:        record.MemorySize,
		Extensions:    d.EnumerateExtensionProperties().Names(),
	}
}
