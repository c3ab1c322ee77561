package core

// Device owns a native device handle with the negotiated API version, the
// enabled-extension bitset and the function-pointer table loaded for the
// handle. Same ownership rules as Instance: single-owner, not safe for
// concurrent use.
type Device struct {
	provider Provider

	handle  DeviceHandle
	flags   HandleFlags
	version Version

	extensions ExtensionSet
	table      *DeviceTable
}

// NewDevice creates a logical device on the physical device the builder
// was seeded with. At least one queue must be requested; a non-success
// result from the native call is fatal.
func NewDevice(instance *Instance, info *DeviceCreateInfo) *Device {
	d := &Device{
		provider: instance.provider,
		flags:    HandleFlagDestroyOnDestruction,
	}

	if info.info.QueueCreateInfoCount == 0 {
		assertf("core.NewDevice(): needs at least one queue")
		return d
	}

	if info.verbose {
		info.logEnabled()
	}

	handle, result := instance.table.CreateDevice(info.properties.handle, &info.info)
	if result != Success {
		mustSucceed("vk.CreateDevice()", result)
		return d
	}

	d.handle = handle
	d.initializeExtensions(info.info.PpEnabledExtensionNames)
	d.initialize(instance, info.version)
	return d
}

// WrapDevice adopts an externally created handle. The handle is only
// destroyed on Destroy if flags say so.
func WrapDevice(instance *Instance, handle DeviceHandle, version Version, enabledExtensions []string, flags HandleFlags) *Device {
	d := &Device{
		provider: instance.provider,
		handle:   handle,
		flags:    flags,
	}
	d.initializeExtensions(enabledExtensions)
	d.initialize(instance, version)
	return d
}

func (d *Device) initializeExtensions(enabledExtensions []string) {
	for _, name := range enabledExtensions {
		if ext, ok := findExtension(trimNul(name)); ok {
			d.extensions.set(ext.Index())
		}
	}
}

func (d *Device) initialize(instance *Instance, version Version) {
	d.version = version
	d.table = newDeviceTable(d.provider, instance.table, d.handle)
}

// Handle returns the native handle, null in the uninitialized state.
func (d *Device) Handle() DeviceHandle { return d.handle }

// Version returns the negotiated API version.
func (d *Device) Version() Version { return d.version }

// IsVersionSupported tells whether the negotiated version is at least the
// given one.
func (d *Device) IsVersionSupported(v Version) bool {
	return d.version.AtLeast(v)
}

// IsExtensionEnabled answers from the bitset by stable index; no name
// search happens at query time.
func (d *Device) IsExtensionEnabled(extension Extension) bool {
	return d.extensions.Has(extension.Index())
}

// IsExtensionEnabledNamed resolves the name through the registry map and
// answers from the bitset. Unregistered names report false.
func (d *Device) IsExtensionEnabledNamed(name string) bool {
	ext, ok := extensionsByName[trimNul(name)]
	if !ok {
		return false
	}
	return d.extensions.Has(ext.Index())
}

// Table returns the function-pointer table bound to this device, nil in
// the uninitialized state.
func (d *Device) Table() *DeviceTable { return d.table }

// Release gives up ownership of the handle and returns it. The device
// reverts to the uninitialized state and its destructor becomes a no-op.
func (d *Device) Release() DeviceHandle {
	handle := d.handle
	d.handle = 0
	d.table = nil
	d.flags = 0
	return handle
}

// Destroy destroys the handle if this device owns one. Safe to call on
// released or wrapped non-owning devices, where it does nothing.
func (d *Device) Destroy() {
	if d.handle != 0 && d.flags&HandleFlagDestroyOnDestruction != 0 {
		d.table.DestroyDevice(d.handle)
	}
	d.handle = 0
	d.table = nil
	d.flags = 0
}

// PopulateGlobalFunctionPointers copies this device's table into the
// process-wide one. Same single-writer contract as the instance variant.
func (d *Device) PopulateGlobalFunctionPointers() {
	globalDeviceTable = *d.table
}
