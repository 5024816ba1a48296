// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package core implements the object-lifecycle and capability
// negotiation layer of the driver: instance, physical device, device
// and queue handles, the capability registries they negotiate
// against, and the name-based dispatch resolver. It performs no
// GPU-side work itself; rendering and submission live behind the
// handles this package produces.
package core

import (
	log "github.com/sirupsen/logrus"

	"github.com/devblok/vkcore/drm"
)

// InstanceCreateInfo is the fixed creation structure for
// CreateInstance.
type InstanceCreateInfo struct {
	ApplicationName    string
	ApplicationVersion uint32
	EngineName         string
	EngineVersion      uint32

	// EnabledLayers must be empty; layers are not supported and a
	// non-empty list rejects the whole creation.
	EnabledLayers []string

	// EnabledExtensions are negotiated against the instance
	// extension registry, all-or-nothing.
	EnabledExtensions []string

	// DebugMode turns on probe and negotiation logging.
	DebugMode bool

	// DevicePath overrides the DRM node to probe. Empty means
	// DefaultDevicePath().
	DevicePath string

	// Prober overrides hardware probing entirely. When nil the
	// instance opens the DRM node itself.
	Prober Prober
}

// Instance is the top-level handle: one initialized driver session
// bound to one hardware probe. The caller must destroy every Device
// created through it before calling Destroy. A single Instance is
// assumed per process; concurrent instances each hold their own
// probe handle but are not guaranteed independent by the hardware.
type Instance struct {
	prober            Prober
	caps              HardwareCapabilities
	phys              PhysicalDevice
	enabledExtensions []int
	debug             bool
}

// CreateInstance negotiates the requested layers and extensions,
// probes the hardware once and returns the ready instance. On any
// failure nothing stays allocated and no device node stays open.
func CreateInstance(info *InstanceCreateInfo) (*Instance, Result) {
	if info == nil {
		panic("vkcore: CreateInstance with nil info")
	}
	if len(info.EnabledLayers) > 0 {
		return nil, ErrorLayerNotPresent
	}
	enabled, res := negotiateExtensions(instanceExtensions, info.EnabledExtensions)
	if res != Success {
		return nil, res
	}

	prober := info.Prober
	if prober == nil {
		path := info.DevicePath
		if path == "" {
			path = DefaultDevicePath()
		}
		p, err := drm.Open(path)
		if err != nil {
			if info.DebugMode {
				log.WithError(err).Debug("device node open failed")
			}
			return nil, ErrorInitializationFailed
		}
		prober = p
	}

	caps, err := probeHardware(prober)
	if err != nil {
		prober.Close()
		if info.DebugMode {
			log.WithError(err).Debug("hardware probe failed")
		}
		return nil, ErrorInitializationFailed
	}
	if info.DebugMode {
		log.WithFields(log.Fields{
			"chipVersion": caps.ChipVersion,
			"tiling":      caps.Tiling,
			"controlFlow": caps.ControlFlow,
			"etc1":        caps.ETC1,
			"threadedFS":  caps.ThreadedFragmentShader,
			"madvise":     caps.Madvise,
		}).Debug("hardware probe complete")
	}

	inst := &Instance{
		prober:            prober,
		caps:              caps,
		enabledExtensions: enabled,
		debug:             info.DebugMode,
	}
	inst.phys.instance = inst
	return inst, Success
}

// Destroy closes the hardware probe handle and invalidates the
// instance. The probe is closed exactly once; repeated calls have no
// effect. All devices created from this instance must already be
// destroyed.
func (inst *Instance) Destroy() {
	if inst == nil || inst.prober == nil {
		return
	}
	inst.prober.Close()
	inst.prober = nil
}

// EnumeratePhysicalDevices enumerates the hardware exposed by the
// instance using the two-phase protocol. This driver always exposes
// exactly one physical device.
func (inst *Instance) EnumeratePhysicalDevices(devices []*PhysicalDevice) (int, Result) {
	return enumerate(devices, []*PhysicalDevice{&inst.phys})
}

// PhysicalDeviceGroupProperties describes one device group.
type PhysicalDeviceGroupProperties struct {
	PhysicalDevices  []*PhysicalDevice
	SubsetAllocation bool
}

// EnumeratePhysicalDeviceGroups reports the single device group. The
// protocol here is kept as the external contract defines it: with a
// buffer present, every requested entry is filled with a description
// of the one group, and Incomplete is reported only when zero entries
// were written.
func (inst *Instance) EnumeratePhysicalDeviceGroups(groups []PhysicalDeviceGroupProperties) (int, Result) {
	if groups == nil {
		return 1, Success
	}
	for i := range groups {
		groups[i] = PhysicalDeviceGroupProperties{
			PhysicalDevices: []*PhysicalDevice{&inst.phys},
		}
	}
	if len(groups) == 0 {
		return 0, Incomplete
	}
	return len(groups), Success
}

// EnabledExtensions returns the names of the instance extensions
// accepted at creation, in request order.
func (inst *Instance) EnabledExtensions() []string {
	return extensionNames(instanceExtensions, inst.enabledExtensions)
}
