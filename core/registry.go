// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

// ExtensionProperties describes one supported extension.
type ExtensionProperties struct {
	ExtensionName string
	SpecVersion   uint32
}

// LayerProperties describes one supported layer. The driver ships
// none, the type exists so the enumeration surface is complete.
type LayerProperties struct {
	LayerName             string
	SpecVersion           uint32
	ImplementationVersion uint32
	Description           string
}

// The two extension registries. Order is part of the contract:
// enumeration returns entries exactly as listed here, and enabled
// extension sets are stored as indices into these tables.
var instanceExtensions = []ExtensionProperties{
	{ExtensionName: "VK_KHR_surface", SpecVersion: 25},
	{ExtensionName: "VK_KHR_display", SpecVersion: 21},
	{ExtensionName: "VK_EXT_debug_report", SpecVersion: 9},
}

var deviceExtensions = []ExtensionProperties{
	{ExtensionName: "VK_KHR_swapchain", SpecVersion: 70},
	{ExtensionName: "VK_KHR_display_swapchain", SpecVersion: 9},
}

// No layers are implemented or loaded.
var instanceLayers []LayerProperties

// findExtension looks name up in one of the registries. The match is
// exact and case sensitive. Returns -1 when absent.
func findExtension(registry []ExtensionProperties, name string) int {
	for i := range registry {
		if registry[i].ExtensionName == name {
			return i
		}
	}
	return -1
}

// negotiateExtensions validates a requested extension name list
// against a registry. All-or-nothing: a single unknown name rejects
// the whole request and no indices are handed out.
func negotiateExtensions(registry []ExtensionProperties, names []string) ([]int, Result) {
	if len(names) == 0 {
		return nil, Success
	}
	enabled := make([]int, 0, len(names))
	for _, name := range names {
		idx := findExtension(registry, name)
		if idx < 0 {
			return nil, ErrorExtensionNotPresent
		}
		enabled = append(enabled, idx)
	}
	return enabled, Success
}

// negotiateFeatures validates a requested feature set against the
// supported snapshot. A nil request means every feature stays
// disabled. The accepted set is a copy, never a reference into the
// request.
func negotiateFeatures(requested *FeatureSet) (FeatureSet, Result) {
	var enabled FeatureSet
	if requested == nil {
		return enabled, Success
	}
	for i := range requested {
		if requested[i] && !supportedFeatures[i] {
			return FeatureSet{}, ErrorFeatureNotPresent
		}
	}
	enabled = *requested
	return enabled, Success
}

// extensionNames maps enabled indices back to registry names.
func extensionNames(registry []ExtensionProperties, indices []int) []string {
	if len(indices) == 0 {
		return nil
	}
	names := make([]string, len(indices))
	for i, idx := range indices {
		names[i] = registry[idx].ExtensionName
	}
	return names
}

// EnumerateInstanceExtensionProperties enumerates the instance-level
// extension registry using the two-phase protocol. Extensions
// provided by layers cannot be queried since layers are not
// supported; a non-empty layerName reports ErrorLayerNotPresent.
func EnumerateInstanceExtensionProperties(layerName string, props []ExtensionProperties) (int, Result) {
	if layerName != "" {
		return 0, ErrorLayerNotPresent
	}
	return enumerate(props, instanceExtensions)
}

// EnumerateInstanceLayerProperties enumerates the (empty) layer
// registry using the two-phase protocol.
func EnumerateInstanceLayerProperties(props []LayerProperties) (int, Result) {
	return enumerate(props, instanceLayers)
}
