package core

import (
	"reflect"
	"testing"
)

func TestEnumerateInstanceLayerProperties(t *testing.T) {
	p := newFakeProvider()
	p.layers = []LayerRecord{
		{LayerName: "VK_LAYER_KHRONOS_validation", SpecVersion: Vk11.Packed(), ImplementationVersion: 4, Description: "validation"},
		{LayerName: "VK_LAYER_MESA_overlay", SpecVersion: Vk10.Packed(), ImplementationVersion: 1, Description: "overlay"},
	}

	layers := EnumerateInstanceLayerProperties(p)
	if layers.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", layers.Count())
	}
	want := []string{"VK_LAYER_KHRONOS_validation", "VK_LAYER_MESA_overlay"}
	if !reflect.DeepEqual(layers.Names(), want) {
		t.Errorf("Names() = %v", layers.Names())
	}
	if !layers.IsSupported("VK_LAYER_MESA_overlay") {
		t.Error("overlay layer not reported supported")
	}
	if layers.IsSupported("VK_LAYER_LUNARG_api_dump") {
		t.Error("absent layer reported supported")
	}
	if layers.Name(0) != "VK_LAYER_KHRONOS_validation" {
		t.Errorf("Name(0) = %q", layers.Name(0))
	}
	if layers.Revision(0) != 4 {
		t.Errorf("Revision(0) = %d", layers.Revision(0))
	}
	if layers.Version(1) != Vk10 {
		t.Errorf("Version(1) = %s", layers.Version(1))
	}
	if layers.Description(1) != "overlay" {
		t.Errorf("Description(1) = %q", layers.Description(1))
	}
}

func TestLayerPropertiesOutOfRange(t *testing.T) {
	failures := captureFailures(t)

	layers := EnumerateInstanceLayerProperties(newFakeProvider())
	if got := layers.Name(3); got != "" {
		t.Errorf("Name(3) = %q, want empty", got)
	}
	if len(*failures) != 1 {
		t.Fatalf("recorded %d failures, want 1", len(*failures))
	}
	if want := "core.LayerProperties.Name(): index 3 out of range for 0 entries"; (*failures)[0] != want {
		t.Errorf("failure = %q", (*failures)[0])
	}
}

// driftingProvider reports a different layer count on the second call.
type driftingProvider struct {
	*fakeProvider
}

func (d driftingProvider) EnumerateInstanceLayerProperties(count *uint32, properties []LayerRecord) Result {
	if properties == nil {
		*count = 3
		return Success
	}
	*count = 2
	return Success
}

func TestLayerPropertiesCountDrift(t *testing.T) {
	failures := captureFailures(t)

	layers := EnumerateInstanceLayerProperties(driftingProvider{newFakeProvider()})
	if layers.Count() != 0 {
		t.Errorf("Count() = %d after a drifted enumeration", layers.Count())
	}
	if len(*failures) != 1 {
		t.Fatalf("recorded %d failures, want 1", len(*failures))
	}
}

func TestEnumerateInstanceExtensionProperties(t *testing.T) {
	p := newFakeProvider()
	p.extensions[""] = []ExtensionRecord{
		{ExtensionName: "VK_KHR_surface", SpecVersion: 25},
		{ExtensionName: "VK_EXT_debug_utils", SpecVersion: 2},
	}
	p.extensions["VK_LAYER_KHRONOS_validation"] = []ExtensionRecord{
		{ExtensionName: "VK_EXT_validation_features", SpecVersion: 3},
		// Duplicate of a global one; the sorted index keeps only the
		// first occurrence.
		{ExtensionName: "VK_KHR_surface", SpecVersion: 24},
	}

	extensions := EnumerateInstanceExtensionProperties(p, "VK_LAYER_KHRONOS_validation")
	if extensions.Count() != 4 {
		t.Fatalf("Count() = %d, want 4", extensions.Count())
	}
	want := []string{"VK_EXT_debug_utils", "VK_EXT_validation_features", "VK_KHR_surface"}
	if !reflect.DeepEqual(extensions.Names(), want) {
		t.Errorf("Names() = %v", extensions.Names())
	}
	if !extensions.IsSupported("VK_EXT_validation_features") {
		t.Error("layer extension not reported supported")
	}
	if extensions.IsSupported("VK_KHR_display") {
		t.Error("absent extension reported supported")
	}
	if got := extensions.Revision("VK_KHR_surface"); got != 25 {
		t.Errorf("Revision(surface) = %d, want 25", got)
	}
	if got := extensions.Revision("VK_KHR_display"); got != 0 {
		t.Errorf("Revision(absent) = %d, want 0", got)
	}

	// Positional accessors follow the fetch order: global first, then
	// each queried layer.
	if extensions.Name(0) != "VK_KHR_surface" {
		t.Errorf("Name(0) = %q", extensions.Name(0))
	}
	if extensions.Layer(0) != 0 {
		t.Errorf("Layer(0) = %d", extensions.Layer(0))
	}
	if extensions.Name(2) != "VK_EXT_validation_features" {
		t.Errorf("Name(2) = %q", extensions.Name(2))
	}
	if extensions.Layer(2) != 1 {
		t.Errorf("Layer(2) = %d", extensions.Layer(2))
	}
	if extensions.RevisionAt(3) != 24 {
		t.Errorf("RevisionAt(3) = %d", extensions.RevisionAt(3))
	}
}

func TestExtensionPropertiesOutOfRange(t *testing.T) {
	failures := captureFailures(t)

	extensions := EnumerateInstanceExtensionProperties(newFakeProvider())
	if got := extensions.Name(0); got != "" {
		t.Errorf("Name(0) = %q, want empty", got)
	}
	if len(*failures) != 1 {
		t.Fatalf("recorded %d failures, want 1", len(*failures))
	}
}
