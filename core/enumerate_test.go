// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/devblok/vkcore/core"
)

// expected registry contents, in registry order.
var (
	wantInstanceExtensions = []string{"VK_KHR_surface", "VK_KHR_display", "VK_EXT_debug_report"}
	wantDeviceExtensions   = []string{"VK_KHR_swapchain", "VK_KHR_display_swapchain"}
)

func TestEnumerateInstanceExtensionsProtocol(t *testing.T) {
	c := qt.New(t)

	total, res := core.EnumerateInstanceExtensionProperties("", nil)
	c.Assert(res, qt.Equals, core.Success)
	c.Assert(total, qt.Equals, len(wantInstanceExtensions))

	for capacity := 0; capacity <= total+2; capacity++ {
		buf := make([]core.ExtensionProperties, capacity)
		n, res := core.EnumerateInstanceExtensionProperties("", buf)

		want := capacity
		if want > total {
			want = total
		}
		c.Assert(n, qt.Equals, want, qt.Commentf("cap=%d", capacity))
		if capacity < total {
			c.Assert(res, qt.Equals, core.Incomplete, qt.Commentf("cap=%d", capacity))
		} else {
			c.Assert(res, qt.Equals, core.Success, qt.Commentf("cap=%d", capacity))
		}
		for i := 0; i < n; i++ {
			c.Assert(buf[i].ExtensionName, qt.Equals, wantInstanceExtensions[i])
		}
	}
}

func TestEnumerateDeviceExtensionsProtocol(t *testing.T) {
	c := qt.New(t)
	inst, _ := newTestInstance(t)
	pd := testPhysicalDevice(t, inst)

	total, res := pd.EnumerateExtensionProperties("", nil)
	c.Assert(res, qt.Equals, core.Success)
	c.Assert(total, qt.Equals, len(wantDeviceExtensions))

	for capacity := 0; capacity <= total+2; capacity++ {
		buf := make([]core.ExtensionProperties, capacity)
		n, res := pd.EnumerateExtensionProperties("", buf)

		want := capacity
		if want > total {
			want = total
		}
		c.Assert(n, qt.Equals, want, qt.Commentf("cap=%d", capacity))
		if capacity < total {
			c.Assert(res, qt.Equals, core.Incomplete, qt.Commentf("cap=%d", capacity))
		} else {
			c.Assert(res, qt.Equals, core.Success, qt.Commentf("cap=%d", capacity))
		}
		for i := 0; i < n; i++ {
			c.Assert(buf[i].ExtensionName, qt.Equals, wantDeviceExtensions[i])
		}
	}
}

func TestEnumerateExtensionsForLayer(t *testing.T) {
	c := qt.New(t)
	inst, _ := newTestInstance(t)
	pd := testPhysicalDevice(t, inst)

	_, res := core.EnumerateInstanceExtensionProperties("VK_LAYER_any", nil)
	c.Assert(res, qt.Equals, core.ErrorLayerNotPresent)

	_, res = pd.EnumerateExtensionProperties("VK_LAYER_any", nil)
	c.Assert(res, qt.Equals, core.ErrorLayerNotPresent)
}

func TestEnumerateLayersEmpty(t *testing.T) {
	c := qt.New(t)

	total, res := core.EnumerateInstanceLayerProperties(nil)
	c.Assert(res, qt.Equals, core.Success)
	c.Assert(total, qt.Equals, 0)

	// A present zero-length buffer is legal and still a full result.
	n, res := core.EnumerateInstanceLayerProperties([]core.LayerProperties{})
	c.Assert(res, qt.Equals, core.Success)
	c.Assert(n, qt.Equals, 0)
}

func TestEnumeratePhysicalDevicesProtocol(t *testing.T) {
	c := qt.New(t)
	inst, _ := newTestInstance(t)

	total, res := inst.EnumeratePhysicalDevices(nil)
	c.Assert(res, qt.Equals, core.Success)
	c.Assert(total, qt.Equals, 1)

	// Zero capacity is a partial result, there is one device to report.
	n, res := inst.EnumeratePhysicalDevices([]*core.PhysicalDevice{})
	c.Assert(res, qt.Equals, core.Incomplete)
	c.Assert(n, qt.Equals, 0)

	buf := make([]*core.PhysicalDevice, 3)
	n, res = inst.EnumeratePhysicalDevices(buf)
	c.Assert(res, qt.Equals, core.Success)
	c.Assert(n, qt.Equals, 1)
	c.Assert(buf[0], qt.Not(qt.IsNil))
	c.Assert(buf[1], qt.IsNil)
}

// Queue family enumeration defines no partial signal; only the
// written count is reported. The asymmetry is part of the contract.
func TestQueueFamilyPropertiesNoPartialSignal(t *testing.T) {
	c := qt.New(t)
	inst, _ := newTestInstance(t)
	pd := testPhysicalDevice(t, inst)

	c.Assert(pd.QueueFamilyProperties(nil), qt.Equals, 1)

	// Too small: nothing to observe but the count.
	c.Assert(pd.QueueFamilyProperties([]core.QueueFamilyProperties{}), qt.Equals, 0)

	props := make([]core.QueueFamilyProperties, 2)
	c.Assert(pd.QueueFamilyProperties(props), qt.Equals, 1)
	c.Assert(props[0].QueueCount, qt.Equals, uint32(1))
	c.Assert(props[0].QueueFlags&core.QueueGraphics, qt.Equals, core.QueueGraphics)
}

func TestEnumeratePhysicalDeviceGroups(t *testing.T) {
	c := qt.New(t)
	inst, _ := newTestInstance(t)

	total, res := inst.EnumeratePhysicalDeviceGroups(nil)
	c.Assert(res, qt.Equals, core.Success)
	c.Assert(total, qt.Equals, 1)

	// Every requested entry describes the one group.
	groups := make([]core.PhysicalDeviceGroupProperties, 2)
	n, res := inst.EnumeratePhysicalDeviceGroups(groups)
	c.Assert(res, qt.Equals, core.Success)
	c.Assert(n, qt.Equals, 2)
	for i := range groups {
		c.Assert(len(groups[i].PhysicalDevices), qt.Equals, 1)
		c.Assert(groups[i].SubsetAllocation, qt.Equals, false)
	}

	// Incomplete is signalled only when zero entries were written.
	n, res = inst.EnumeratePhysicalDeviceGroups([]core.PhysicalDeviceGroupProperties{})
	c.Assert(res, qt.Equals, core.Incomplete)
	c.Assert(n, qt.Equals, 0)
}
