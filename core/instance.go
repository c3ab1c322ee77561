package core

// Instance owns a native instance handle together with the negotiated API
// version, the enabled-extension bitset and the function-pointer table
// loaded for that handle. The handle and the table are always either both
// valid or both null.
//
// Instances are single-owner: exactly one of them may destroy the handle,
// and none of the methods are safe for concurrent use.
type Instance struct {
	provider Provider

	handle  InstanceHandle
	flags   HandleFlags
	version Version

	extensions ExtensionSet
	table      *InstanceTable

	surface SurfaceHandle
	config  Config
}

// NewInstance creates an instance from the accumulated creation
// parameters. A non-success result from the native call is fatal; context
// creation failure is a configuration or environment error, not something
// to recover from.
func NewInstance(p Provider, info *InstanceCreateInfo) *Instance {
	i := &Instance{
		provider: p,
		flags:    HandleFlagDestroyOnDestruction,
		config:   info.config,
	}

	if info.verbose {
		info.logEnabled()
	}

	handle, result := p.CreateInstance(&info.info)
	if result != Success {
		mustSucceed("vk.CreateInstance()", result)
		return i
	}

	// The bitset reflects the list actually used at creation, not the
	// requested one; the blacklist may have removed entries.
	i.handle = handle
	i.initializeExtensions(info.info.PpEnabledExtensionNames)
	i.initialize(p, info.version)
	return i
}

// WrapInstance adopts an externally created handle. The handle is only
// destroyed on Destroy if flags say so.
func WrapInstance(p Provider, handle InstanceHandle, version Version, enabledExtensions []string, flags HandleFlags) *Instance {
	i := &Instance{
		provider: p,
		handle:   handle,
		flags:    flags,
		config:   Config{Version: VersionNone},
	}
	i.initializeExtensions(enabledExtensions)
	i.initialize(p, version)
	return i
}

func (i *Instance) initializeExtensions(enabledExtensions []string) {
	// Mark all known extensions as enabled. Names that don't match any
	// registry shard are driver or vendor extensions the registry doesn't
	// model and are silently ignored.
	for _, name := range enabledExtensions {
		if ext, ok := findInstanceExtension(trimNul(name)); ok {
			i.extensions.set(ext.Index())
		}
	}
}

func (i *Instance) initialize(p Provider, version Version) {
	i.version = version
	i.table = newInstanceTable(p, i.handle)
}

// Handle returns the native handle, null in the uninitialized state.
func (i *Instance) Handle() InstanceHandle { return i.handle }

// Version returns the negotiated API version.
func (i *Instance) Version() Version { return i.version }

// IsVersionSupported tells whether the negotiated version is at least the
// given one.
func (i *Instance) IsVersionSupported(v Version) bool {
	return i.version.AtLeast(v)
}

// IsExtensionEnabled answers from the bitset by stable index; no name
// search happens at query time.
func (i *Instance) IsExtensionEnabled(extension InstanceExtension) bool {
	return i.extensions.Has(extension.Index())
}

// IsExtensionEnabledNamed resolves the name through the registry map and
// answers from the bitset. Unregistered names report false.
func (i *Instance) IsExtensionEnabledNamed(name string) bool {
	ext, ok := instanceExtensionsByName[trimNul(name)]
	if !ok {
		return false
	}
	return i.extensions.Has(ext.Index())
}

// Table returns the function-pointer table bound to this instance, nil in
// the uninitialized state.
func (i *Instance) Table() *InstanceTable { return i.table }

// SetSurface attaches a window surface created against this instance.
func (i *Instance) SetSurface(surface SurfaceHandle) { i.surface = surface }

// Surface returns the attached window surface, null if none was set.
func (i *Instance) Surface() SurfaceHandle { return i.surface }

// Release gives up ownership of the handle and returns it. The instance
// reverts to the uninitialized state and its destructor becomes a no-op.
func (i *Instance) Release() InstanceHandle {
	handle := i.handle
	i.handle = 0
	i.table = nil
	i.flags = 0
	return handle
}

// Destroy destroys the handle if this instance owns one. Safe to call on
// released or wrapped non-owning instances, where it does nothing.
func (i *Instance) Destroy() {
	if i.handle != 0 && i.flags&HandleFlagDestroyOnDestruction != 0 {
		i.table.DestroyInstance(i.handle)
	}
	i.handle = 0
	i.table = nil
	i.flags = 0
}

// PopulateGlobalFunctionPointers copies this instance's table into the
// process-wide one. That is shared mutable state: concurrent populate
// calls, or calls concurrent with code dispatching through the global
// table for a different instance, must be serialized by the caller.
func (i *Instance) PopulateGlobalFunctionPointers() {
	globalInstanceTable = *i.table
}

func enumerateInstanceVersion(p Provider) Version {
	raw, result := p.InstanceVersion()
	if result != Success {
		mustSucceed("vk.EnumerateInstanceVersion()", result)
		return VersionNone
	}
	return VersionFromPacked(raw)
}
