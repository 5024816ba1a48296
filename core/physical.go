// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

// PhysicalDeviceType classifies the hardware.
type PhysicalDeviceType int32

const (
	DeviceTypeOther PhysicalDeviceType = iota
	DeviceTypeIntegratedGPU
	DeviceTypeDiscreteGPU
	DeviceTypeVirtualGPU
	DeviceTypeCPU
)

// Identity of the one device this driver exposes.
const (
	vendorIDBroadcom = 0x14E4
	deviceName       = "VideoCore IV HW"
)

// PhysicalDeviceProperties is the immutable identity and limit block
// returned by value on query.
type PhysicalDeviceProperties struct {
	APIVersion    uint32
	DriverVersion uint32
	VendorID      uint32
	DeviceID      uint32
	DeviceType    PhysicalDeviceType
	DeviceName    string
	Limits        Limits
}

// PhysicalDevice is a queryable capability view of the hardware
// exposed by an Instance. It is not separately allocated or freed;
// its lifetime is the owning instance's.
type PhysicalDevice struct {
	instance *Instance // non-owning back-reference
}

// Instance returns the owning instance.
func (pd *PhysicalDevice) Instance() *Instance { return pd.instance }

// Properties returns the device identity and limits.
func (pd *PhysicalDevice) Properties() PhysicalDeviceProperties {
	return PhysicalDeviceProperties{
		APIVersion:    APIVersion,
		DriverVersion: DriverVersion,
		VendorID:      vendorIDBroadcom,
		DeviceType:    DeviceTypeIntegratedGPU,
		DeviceName:    deviceName,
		Limits:        limits,
	}
}

// Features returns the hardware-supported feature snapshot.
func (pd *PhysicalDevice) Features() FeatureSet { return supportedFeatures }

// Limits returns the implementation limits.
func (pd *PhysicalDevice) Limits() Limits { return limits }

// HardwareCapabilities returns the snapshot cached at instance
// creation from the kernel driver probe.
func (pd *PhysicalDevice) HardwareCapabilities() HardwareCapabilities {
	return pd.instance.caps
}

// QueueFamilyProperties queries the queue family descriptors with the
// two-phase count-then-fill pattern. Unlike the other plural queries
// this one defines no partial signal, so only the written count is
// returned. A documented asymmetry of the external contract.
func (pd *PhysicalDevice) QueueFamilyProperties(props []QueueFamilyProperties) int {
	if props == nil {
		return NumQueueFamilies
	}
	return copy(props, queueFamilies[:])
}

// EnumerateExtensionProperties enumerates the device-level extension
// registry. Layers are not supported, so a non-empty layerName
// reports ErrorLayerNotPresent.
func (pd *PhysicalDevice) EnumerateExtensionProperties(layerName string, props []ExtensionProperties) (int, Result) {
	if layerName != "" {
		return 0, ErrorLayerNotPresent
	}
	return enumerate(props, deviceExtensions)
}

// EnumerateLayerProperties enumerates the (empty) device layer set.
func (pd *PhysicalDevice) EnumerateLayerProperties(props []LayerProperties) (int, Result) {
	return enumerate(props, instanceLayers)
}

// SurfaceSupport reports whether the given queue family can present.
// The modesetting node backs every family, so this is constant true.
// An out-of-range family is a caller error.
func (pd *PhysicalDevice) SurfaceSupport(family int) bool {
	if family < 0 || family >= NumQueueFamilies {
		panic("vkcore: queue family index out of range")
	}
	return true
}
