package core

import "sort"

// LayerProperties is the owned result of enumerating the layers the
// implementation exposes. Once populated it never changes; name lookups
// binary-search a sorted index.
type LayerProperties struct {
	layers []LayerRecord
	names  []string
}

// EnumerateInstanceLayerProperties queries the provider for all available
// layers with the two-call protocol.
func EnumerateInstanceLayerProperties(p Provider) *LayerProperties {
	var count uint32
	mustSucceed("vk.EnumerateInstanceLayerProperties(count)", p.EnumerateInstanceLayerProperties(&count, nil))

	layers := make([]LayerRecord, count)
	if count != 0 {
		mustSucceed("vk.EnumerateInstanceLayerProperties()", p.EnumerateInstanceLayerProperties(&count, layers))
		if int(count) != len(layers) {
			internalAssertf("core: layer count changed between enumeration calls, %d then %d", len(layers), count)
			return &LayerProperties{}
		}
	}

	names := make([]string, len(layers))
	for i, layer := range layers {
		names[i] = layer.LayerName
	}
	sort.Strings(names)
	names = dedupe(names)

	return &LayerProperties{layers: layers, names: names}
}

// Count returns the number of enumerated layers.
func (l *LayerProperties) Count() int { return len(l.layers) }

// Names returns the layer names, sorted and deduplicated.
func (l *LayerProperties) Names() []string { return l.names }

// IsSupported tells whether a layer of the given name exists.
func (l *LayerProperties) IsSupported(name string) bool {
	return containsSorted(l.names, name)
}

// Name returns the name of the layer at the given enumeration position.
func (l *LayerProperties) Name(id int) string {
	if id >= len(l.layers) {
		assertf("core.LayerProperties.Name(): index %d out of range for %d entries", id, len(l.layers))
		return ""
	}
	return l.layers[id].LayerName
}

// Revision returns the layer's implementation revision.
func (l *LayerProperties) Revision(id int) uint32 {
	if id >= len(l.layers) {
		assertf("core.LayerProperties.Revision(): index %d out of range for %d entries", id, len(l.layers))
		return 0
	}
	return l.layers[id].ImplementationVersion
}

// Version returns the API version the layer was written against.
func (l *LayerProperties) Version(id int) Version {
	if id >= len(l.layers) {
		assertf("core.LayerProperties.Version(): index %d out of range for %d entries", id, len(l.layers))
		return VersionNone
	}
	return VersionFromPacked(l.layers[id].SpecVersion)
}

// Description returns the layer's description string.
func (l *LayerProperties) Description(id int) string {
	if id >= len(l.layers) {
		assertf("core.LayerProperties.Description(): index %d out of range for %d entries", id, len(l.layers))
		return ""
	}
	return l.layers[id].Description
}

type extensionEntry struct {
	name     string
	revision uint32
	layer    uint32
}

// ExtensionProperties is the owned result of enumerating extensions from
// the implementation plus any requested layers. Entries keep the owning
// layer index (0 is the implementation itself, i the i-th queried layer).
// A sorted, deduplicated name index backs the binary-search lookups.
type ExtensionProperties struct {
	extensions []extensionEntry
	sorted     []extensionEntry
}

// extensionEnumerator abstracts over the instance-level and device-level
// native enumeration entry points.
type extensionEnumerator func(layer string, count *uint32, properties []ExtensionRecord) Result

func newExtensionProperties(layers []string, enumerate extensionEnumerator) *ExtensionProperties {
	// Total count over the implementation and every layer.
	counts := make([]uint32, len(layers)+1)
	var total uint32
	for i := 0; i <= len(layers); i++ {
		layer := ""
		if i > 0 {
			layer = layers[i-1]
		}
		mustSucceed("vk.EnumerateExtensionProperties(count)", enumerate(layer, &counts[i], nil))
		total += counts[i]
	}

	records := make([]ExtensionRecord, total)
	extensions := make([]extensionEntry, 0, total)
	var offset uint32
	for i := 0; i <= len(layers); i++ {
		layer := ""
		if i > 0 {
			layer = layers[i-1]
		}
		count := counts[i]
		if count == 0 {
			continue
		}
		mustSucceed("vk.EnumerateExtensionProperties()", enumerate(layer, &count, records[offset:offset+counts[i]]))
		if count != counts[i] {
			internalAssertf("core: extension count changed between enumeration calls, %d then %d", counts[i], count)
			return &ExtensionProperties{}
		}
		for _, record := range records[offset : offset+count] {
			extensions = append(extensions, extensionEntry{
				name:     record.ExtensionName,
				revision: record.SpecVersion,
				layer:    uint32(i),
			})
		}
		offset += count
	}
	if offset != total {
		internalAssertf("core: total extension count changed between enumeration calls, %d then %d", total, offset)
		return &ExtensionProperties{}
	}

	// Sorted, deduplicated view for the O(log n) lookups.
	sorted := make([]extensionEntry, len(extensions))
	copy(sorted, extensions)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].name < sorted[j].name })
	unique := sorted[:0]
	for _, entry := range sorted {
		if len(unique) == 0 || unique[len(unique)-1].name != entry.name {
			unique = append(unique, entry)
		}
	}

	return &ExtensionProperties{extensions: extensions, sorted: unique}
}

// EnumerateInstanceExtensionProperties queries extensions of the
// implementation plus each of the given layers.
func EnumerateInstanceExtensionProperties(p Provider, layers ...string) *ExtensionProperties {
	return newExtensionProperties(layers, p.EnumerateInstanceExtensionProperties)
}

// Count returns the number of enumerated extensions, duplicates included.
func (e *ExtensionProperties) Count() int { return len(e.extensions) }

// Names returns the extension names, sorted and deduplicated.
func (e *ExtensionProperties) Names() []string {
	names := make([]string, len(e.sorted))
	for i, entry := range e.sorted {
		names[i] = entry.name
	}
	return names
}

// IsSupported binary-searches for an extension of the given name.
func (e *ExtensionProperties) IsSupported(name string) bool {
	at := sort.Search(len(e.sorted), func(i int) bool { return e.sorted[i].name >= name })
	return at < len(e.sorted) && e.sorted[at].name == name
}

// Revision returns the reported revision of the named extension, or 0 when
// it isn't supported.
func (e *ExtensionProperties) Revision(name string) uint32 {
	at := sort.Search(len(e.sorted), func(i int) bool { return e.sorted[i].name >= name })
	if at == len(e.sorted) || e.sorted[at].name != name {
		return 0
	}
	return e.sorted[at].revision
}

// Name returns the name at the given enumeration position. Unlike Names
// this follows the original fetch order.
func (e *ExtensionProperties) Name(id int) string {
	if id >= len(e.extensions) {
		assertf("core.ExtensionProperties.Name(): index %d out of range for %d entries", id, len(e.extensions))
		return ""
	}
	return e.extensions[id].name
}

// RevisionAt returns the revision at the given enumeration position.
func (e *ExtensionProperties) RevisionAt(id int) uint32 {
	if id >= len(e.extensions) {
		assertf("core.ExtensionProperties.RevisionAt(): index %d out of range for %d entries", id, len(e.extensions))
		return 0
	}
	return e.extensions[id].revision
}

// Layer returns the owning layer index at the given enumeration position;
// 0 means the extension comes from the implementation itself.
func (e *ExtensionProperties) Layer(id int) uint32 {
	if id >= len(e.extensions) {
		assertf("core.ExtensionProperties.Layer(): index %d out of range for %d entries", id, len(e.extensions))
		return 0
	}
	return e.extensions[id].layer
}

func dedupe(sorted []string) []string {
	out := sorted[:0]
	for _, s := range sorted {
		if len(out) == 0 || out[len(out)-1] != s {
			out = append(out, s)
		}
	}
	return out
}
