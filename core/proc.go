// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

// The dispatch resolver maps external entry-point names to Go
// function values. Values come back as any; the caller asserts the
// concrete signature it expects. The tables are built once at
// package init, lookups never scan.

// bootstrapProcs are the only names that resolve without an
// instance.
var bootstrapProcs = map[string]bool{
	"vkEnumerateInstanceVersion":             true,
	"vkEnumerateInstanceExtensionProperties": true,
	"vkEnumerateInstanceLayerProperties":     true,
	"vkCreateInstance":                       true,
}

// deviceDeniedProcs are instance-level queries that must be resolved
// through the instance resolver, never the device one. The list
// covers the whole contract surface, implemented here or not.
var deviceDeniedProcs = map[string]bool{
	"vkDestroyInstance":                              true,
	"vkEnumeratePhysicalDevices":                     true,
	"vkEnumeratePhysicalDeviceGroups":                true,
	"vkGetPhysicalDeviceFeatures":                    true,
	"vkGetPhysicalDeviceProperties":                  true,
	"vkGetPhysicalDeviceQueueFamilyProperties":       true,
	"vkGetPhysicalDeviceFormatProperties":            true,
	"vkGetPhysicalDeviceImageFormatProperties":       true,
	"vkGetPhysicalDeviceMemoryProperties":            true,
	"vkGetPhysicalDeviceSparseImageFormatProperties": true,
	"vkCreateDevice":                                 true,
	"vkEnumerateDeviceExtensionProperties":           true,
	"vkEnumerateDeviceLayerProperties":               true,
}

// procs is the comprehensive name table. First (only) match wins;
// anything absent resolves to nil. Populated in init to avoid an
// initialization cycle with InstanceProcAddr/DeviceProcAddr.
var procs map[string]any

func init() {
	procs = map[string]any{
		"vkEnumerateInstanceVersion":             EnumerateInstanceVersion,
		"vkEnumerateInstanceExtensionProperties": EnumerateInstanceExtensionProperties,
		"vkEnumerateInstanceLayerProperties":     EnumerateInstanceLayerProperties,
		"vkCreateInstance":                       CreateInstance,
		"vkDestroyInstance":                      (*Instance).Destroy,
		"vkEnumeratePhysicalDevices":             (*Instance).EnumeratePhysicalDevices,
		"vkEnumeratePhysicalDeviceGroups":        (*Instance).EnumeratePhysicalDeviceGroups,
		"vkGetInstanceProcAddr":                  InstanceProcAddr,
		"vkGetDeviceProcAddr":                    DeviceProcAddr,

		"vkGetPhysicalDeviceFeatures":              (*PhysicalDevice).Features,
		"vkGetPhysicalDeviceProperties":            (*PhysicalDevice).Properties,
		"vkGetPhysicalDeviceQueueFamilyProperties": (*PhysicalDevice).QueueFamilyProperties,
		"vkGetPhysicalDeviceSurfaceSupportKHR":     (*PhysicalDevice).SurfaceSupport,
		"vkEnumerateDeviceExtensionProperties":     (*PhysicalDevice).EnumerateExtensionProperties,
		"vkEnumerateDeviceLayerProperties":         (*PhysicalDevice).EnumerateLayerProperties,
		"vkCreateDevice":                           (*PhysicalDevice).CreateDevice,

		"vkDestroyDevice":  (*Device).Destroy,
		"vkGetDeviceQueue": (*Device).Queue,
	}
}

// InstanceProcAddr resolves name to a callable function value. With a
// nil instance only the bootstrap entry points resolve; with an
// instance any name in the table does. Unknown names resolve to nil.
func InstanceProcAddr(inst *Instance, name string) any {
	if inst == nil && !bootstrapProcs[name] {
		return nil
	}
	return procs[name]
}

// DeviceProcAddr is the restricted device-level view of the
// resolver: instance-only names are refused outright, everything
// else falls back to the instance-bound resolver of the device's
// owning instance. dev must be a valid device handle.
func DeviceProcAddr(dev *Device, name string) any {
	if deviceDeniedProcs[name] {
		return nil
	}
	return InstanceProcAddr(dev.physicalDevice.instance, name)
}
