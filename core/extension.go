package core

import "sort"

// Capacity of each extension index space. Indices are dense, assigned at
// registration time and never reused; registering past the capacity is a
// programming error, not a runtime condition.
const (
	maxInstanceExtensionCount = 16
	maxExtensionCount         = 72
)

// InstanceExtension statically describes an instance-level extension: its
// name, the version that folds it into core (VersionNone if none does),
// the minimum version it can be requested on, and a stable index into the
// instance-extension bit space.
type InstanceExtension struct {
	index           int
	requiredVersion Version
	coreVersion     Version
	name            string
}

// Index returns the stable index, unique within the instance class.
func (e InstanceExtension) Index() int { return e.index }

// Name returns the extension name string.
func (e InstanceExtension) Name() string { return e.name }

// RequiredVersion returns the minimum API version the extension needs.
func (e InstanceExtension) RequiredVersion() Version { return e.requiredVersion }

// CoreVersion returns the version that adopted the extension into core, or
// VersionNone.
func (e InstanceExtension) CoreVersion() Version { return e.coreVersion }

// Extension statically describes a device-level extension.
type Extension struct {
	index           int
	requiredVersion Version
	coreVersion     Version
	name            string
}

// Index returns the stable index, unique within the device class.
func (e Extension) Index() int { return e.index }

// Name returns the extension name string.
func (e Extension) Name() string { return e.name }

// RequiredVersion returns the minimum API version the extension needs.
func (e Extension) RequiredVersion() Version { return e.requiredVersion }

// CoreVersion returns the version that adopted the extension into core, or
// VersionNone.
func (e Extension) CoreVersion() Version { return e.coreVersion }

// The registry is partitioned into shards by core version, each kept
// sorted by name for the construction-time search. The by-name maps serve
// the O(1) query path.
var (
	instanceExtensionCount   int
	instanceExtensionShards  = map[Version][]InstanceExtension{}
	instanceExtensionsByName = map[string]InstanceExtension{}

	extensionCount   int
	extensionShards  = map[Version][]Extension{}
	extensionsByName = map[string]Extension{}
)

// shardVersions is the fixed lookup order across registry shards.
var shardVersions = []Version{VersionNone, Vk11, Vk12}

func registerInstanceExtension(name string, required, core Version) InstanceExtension {
	if instanceExtensionCount >= maxInstanceExtensionCount {
		panic("core: instance extension index space exhausted")
	}
	if _, ok := instanceExtensionsByName[name]; ok {
		panic("core: duplicate instance extension " + name)
	}
	ext := InstanceExtension{
		index:           instanceExtensionCount,
		requiredVersion: required,
		coreVersion:     core,
		name:            name,
	}
	instanceExtensionCount++
	instanceExtensionShards[core] = insertInstanceExtension(instanceExtensionShards[core], ext)
	instanceExtensionsByName[name] = ext
	return ext
}

func insertInstanceExtension(shard []InstanceExtension, ext InstanceExtension) []InstanceExtension {
	at := sort.Search(len(shard), func(i int) bool { return shard[i].name >= ext.name })
	shard = append(shard, InstanceExtension{})
	copy(shard[at+1:], shard[at:])
	shard[at] = ext
	return shard
}

func registerExtension(name string, required, core Version) Extension {
	if extensionCount >= maxExtensionCount {
		panic("core: device extension index space exhausted")
	}
	if _, ok := extensionsByName[name]; ok {
		panic("core: duplicate device extension " + name)
	}
	ext := Extension{
		index:           extensionCount,
		requiredVersion: required,
		coreVersion:     core,
		name:            name,
	}
	extensionCount++
	extensionShards[core] = insertExtension(extensionShards[core], ext)
	extensionsByName[name] = ext
	return ext
}

func insertExtension(shard []Extension, ext Extension) []Extension {
	at := sort.Search(len(shard), func(i int) bool { return shard[i].name >= ext.name })
	shard = append(shard, Extension{})
	copy(shard[at+1:], shard[at:])
	shard[at] = ext
	return shard
}

// findInstanceExtension looks a name up across the version-partitioned
// shards. A name not registered anywhere is not an error; drivers report
// vendor extensions the registry doesn't model.
func findInstanceExtension(name string) (InstanceExtension, bool) {
	for _, v := range shardVersions {
		shard := instanceExtensionShards[v]
		at := sort.Search(len(shard), func(i int) bool { return shard[i].name >= name })
		if at < len(shard) && shard[at].name == name {
			return shard[at], true
		}
	}
	return InstanceExtension{}, false
}

func findExtension(name string) (Extension, bool) {
	for _, v := range shardVersions {
		shard := extensionShards[v]
		at := sort.Search(len(shard), func(i int) bool { return shard[i].name >= name })
		if at < len(shard) && shard[at].name == name {
			return shard[at], true
		}
	}
	return Extension{}, false
}

// InstanceExtensionNamed returns the registered instance extension with
// the given name.
func InstanceExtensionNamed(name string) (InstanceExtension, bool) {
	ext, ok := instanceExtensionsByName[name]
	return ext, ok
}

// ExtensionNamed returns the registered device extension with the given
// name.
func ExtensionNamed(name string) (Extension, bool) {
	ext, ok := extensionsByName[name]
	return ext, ok
}

// KnownInstanceExtensions returns the registered instance extensions
// adopted into core by the given version, sorted by name.
func KnownInstanceExtensions(core Version) []InstanceExtension {
	shard := instanceExtensionShards[core]
	out := make([]InstanceExtension, len(shard))
	copy(out, shard)
	return out
}

// KnownExtensions returns the registered device extensions adopted into
// core by the given version, sorted by name.
func KnownExtensions(core Version) []Extension {
	shard := extensionShards[core]
	out := make([]Extension, len(shard))
	copy(out, shard)
	return out
}

// ExtensionSet is a fixed-width bitset of enabled extensions keyed by the
// registry's stable indices.
type ExtensionSet struct {
	bits [(maxExtensionCount + 63) / 64]uint64
}

func (s *ExtensionSet) set(index int) {
	s.bits[index>>6] |= 1 << (uint(index) & 63)
}

// Has is a direct bitset lookup, never a name search.
func (s *ExtensionSet) Has(index int) bool {
	return s.bits[index>>6]&(1<<(uint(index)&63)) != 0
}

// Known instance extensions.
var (
	EXTDebugReport                   = registerInstanceExtension("VK_EXT_debug_report", Vk10, VersionNone)
	EXTDebugUtils                    = registerInstanceExtension("VK_EXT_debug_utils", Vk10, VersionNone)
	EXTValidationFeatures            = registerInstanceExtension("VK_EXT_validation_features", Vk10, VersionNone)
	KHRGetSurfaceCapabilities2       = registerInstanceExtension("VK_KHR_get_surface_capabilities2", Vk10, VersionNone)
	KHRSurface                       = registerInstanceExtension("VK_KHR_surface", Vk10, VersionNone)
	KHRDeviceGroupCreation           = registerInstanceExtension("VK_KHR_device_group_creation", Vk10, Vk11)
	KHRExternalFenceCapabilities     = registerInstanceExtension("VK_KHR_external_fence_capabilities", Vk10, Vk11)
	KHRExternalMemoryCapabilities    = registerInstanceExtension("VK_KHR_external_memory_capabilities", Vk10, Vk11)
	KHRExternalSemaphoreCapabilities = registerInstanceExtension("VK_KHR_external_semaphore_capabilities", Vk10, Vk11)
	KHRGetPhysicalDeviceProperties2  = registerInstanceExtension("VK_KHR_get_physical_device_properties2", Vk10, Vk11)
)

// Known device extensions.
var (
	EXTDebugMarker              = registerExtension("VK_EXT_debug_marker", Vk10, VersionNone)
	EXTIndexTypeUint8           = registerExtension("VK_EXT_index_type_uint8", Vk10, VersionNone)
	KHRSwapchain                = registerExtension("VK_KHR_swapchain", Vk10, VersionNone)
	KHR16bitStorage             = registerExtension("VK_KHR_16bit_storage", Vk10, Vk11)
	KHRBindMemory2              = registerExtension("VK_KHR_bind_memory2", Vk10, Vk11)
	KHRDedicatedAllocation      = registerExtension("VK_KHR_dedicated_allocation", Vk10, Vk11)
	KHRDeviceGroup              = registerExtension("VK_KHR_device_group", Vk10, Vk11)
	KHRMaintenance1             = registerExtension("VK_KHR_maintenance1", Vk10, Vk11)
	KHRMaintenance2             = registerExtension("VK_KHR_maintenance2", Vk10, Vk11)
	KHRMaintenance3             = registerExtension("VK_KHR_maintenance3", Vk10, Vk11)
	KHRMultiview                = registerExtension("VK_KHR_multiview", Vk10, Vk11)
	KHRSamplerYcbcrConversion   = registerExtension("VK_KHR_sampler_ycbcr_conversion", Vk10, Vk11)
	EXTDescriptorIndexing       = registerExtension("VK_EXT_descriptor_indexing", Vk11, Vk12)
	EXTHostQueryReset           = registerExtension("VK_EXT_host_query_reset", Vk10, Vk12)
	EXTSamplerFilterMinmax      = registerExtension("VK_EXT_sampler_filter_minmax", Vk10, Vk12)
	EXTScalarBlockLayout        = registerExtension("VK_EXT_scalar_block_layout", Vk10, Vk12)
	KHR8bitStorage              = registerExtension("VK_KHR_8bit_storage", Vk10, Vk12)
	KHRBufferDeviceAddress      = registerExtension("VK_KHR_buffer_device_address", Vk10, Vk12)
	KHRCreateRenderpass2        = registerExtension("VK_KHR_create_renderpass2", Vk10, Vk12)
	KHRDepthStencilResolve      = registerExtension("VK_KHR_depth_stencil_resolve", Vk10, Vk12)
	KHRDrawIndirectCount        = registerExtension("VK_KHR_draw_indirect_count", Vk10, Vk12)
	KHRDriverProperties         = registerExtension("VK_KHR_driver_properties", Vk10, Vk12)
	KHRImagelessFramebuffer     = registerExtension("VK_KHR_imageless_framebuffer", Vk10, Vk12)
	KHRSamplerMirrorClampToEdge = registerExtension("VK_KHR_sampler_mirror_clamp_to_edge", Vk10, Vk12)
	KHRShaderFloat16Int8        = registerExtension("VK_KHR_shader_float16_int8", Vk10, Vk12)
	KHRSpirv14                  = registerExtension("VK_KHR_spirv_1_4", Vk11, Vk12)
	KHRTimelineSemaphore        = registerExtension("VK_KHR_timeline_semaphore", Vk10, Vk12)
	KHRUniformBufferLayout      = registerExtension("VK_KHR_uniform_buffer_standard_layout", Vk10, Vk12)
	KHRVulkanMemoryModel        = registerExtension("VK_KHR_vulkan_memory_model", Vk10, Vk12)
)
