// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"testing"

	"github.com/devblok/vkcore/core"
)

func createTestDevice(t *testing.T, info *core.DeviceCreateInfo) *core.Device {
	t.Helper()
	inst, _ := newTestInstance(t)
	pd := testPhysicalDevice(t, inst)
	dev, res := pd.CreateDevice(info)
	if res != core.Success {
		t.Fatalf("CreateDevice: got %v, want Success", res)
	}
	t.Cleanup(dev.Destroy)
	return dev
}

func TestCreateDeviceQueues(t *testing.T) {
	dev := createTestDevice(t, &core.DeviceCreateInfo{
		QueueCreateInfos: []core.QueueCreateInfo{{FamilyIndex: 0, Count: 3}},
	})

	if got := dev.QueueCount(0); got != 3 {
		t.Fatalf("QueueCount(0): got %d, want 3", got)
	}

	seen := make(map[*core.Queue]bool)
	for i := 0; i < 3; i++ {
		q := dev.Queue(0, i)
		if q == nil {
			t.Fatalf("Queue(0, %d) is nil", i)
		}
		if seen[q] {
			t.Errorf("Queue(0, %d) returned an already seen handle", i)
		}
		seen[q] = true

		if q.Device() != dev {
			t.Errorf("Queue(0, %d) back-reference does not point at its device", i)
		}
		if q.Family() != 0 || q.Index() != i {
			t.Errorf("Queue(0, %d) identifies as (%d, %d)", i, q.Family(), q.Index())
		}
		if q.LastEmitSeqno() != 0 {
			t.Errorf("Queue(0, %d) initial seqno: got %d, want 0", i, q.LastEmitSeqno())
		}
	}
}

func TestCreateDeviceNoQueues(t *testing.T) {
	dev := createTestDevice(t, &core.DeviceCreateInfo{})
	if got := dev.QueueCount(0); got != 0 {
		t.Errorf("QueueCount(0): got %d, want 0", got)
	}
	mustPanic(t, "Queue(0, 0) with no queues", func() { dev.Queue(0, 0) })
}

func TestQueueLookupOutOfBounds(t *testing.T) {
	dev := createTestDevice(t, &core.DeviceCreateInfo{
		QueueCreateInfos: []core.QueueCreateInfo{{FamilyIndex: 0, Count: 3}},
	})

	mustPanic(t, "queue index past created count", func() { dev.Queue(0, 3) })
	mustPanic(t, "negative queue index", func() { dev.Queue(0, -1) })
	mustPanic(t, "family index out of range", func() { dev.Queue(1, 0) })
	mustPanic(t, "negative family index", func() { dev.Queue(-1, 0) })
}

func TestCreateDeviceUnknownExtension(t *testing.T) {
	inst, _ := newTestInstance(t)
	pd := testPhysicalDevice(t, inst)

	dev, res := pd.CreateDevice(&core.DeviceCreateInfo{
		EnabledExtensions: []string{"VK_KHR_swapchain", "VK_KHR_not_in_registry"},
	})
	if res != core.ErrorExtensionNotPresent {
		t.Errorf("result: got %v, want ErrorExtensionNotPresent", res)
	}
	if dev != nil {
		t.Error("failed creation must not return a device")
	}
}

func TestCreateDeviceUnsupportedFeature(t *testing.T) {
	inst, _ := newTestInstance(t)
	pd := testPhysicalDevice(t, inst)

	var features core.FeatureSet
	features.Set(core.FeatureGeometryShader, true)

	dev, res := pd.CreateDevice(&core.DeviceCreateInfo{EnabledFeatures: &features})
	if res != core.ErrorFeatureNotPresent {
		t.Errorf("result: got %v, want ErrorFeatureNotPresent", res)
	}
	if dev != nil {
		t.Error("failed creation must not return a device")
	}
}

func TestCreateDeviceAllFeaturesDisabled(t *testing.T) {
	// An all-false request is always satisfiable.
	var features core.FeatureSet
	dev := createTestDevice(t, &core.DeviceCreateInfo{EnabledFeatures: &features})

	enabled := dev.EnabledFeatures()
	for f := core.Feature(0); f < core.NumFeatures; f++ {
		if enabled.Enabled(f) {
			t.Errorf("feature %d enabled, want all disabled", f)
		}
	}
}

func TestCreateDeviceSupportedFeatures(t *testing.T) {
	supported := core.SupportedFeatures()
	dev := createTestDevice(t, &core.DeviceCreateInfo{EnabledFeatures: &supported})

	if dev.EnabledFeatures() != supported {
		t.Error("enabled features do not match the accepted request")
	}
}

func TestCreateDeviceNilFeaturesMeansDisabled(t *testing.T) {
	dev := createTestDevice(t, &core.DeviceCreateInfo{})
	if dev.EnabledFeatures() != (core.FeatureSet{}) {
		t.Error("nil feature request must leave every feature disabled")
	}
}

func TestDeviceExtensionNegotiation(t *testing.T) {
	dev := createTestDevice(t, &core.DeviceCreateInfo{
		EnabledExtensions: []string{"VK_KHR_display_swapchain", "VK_KHR_swapchain"},
	})

	enabled := dev.EnabledExtensions()
	want := []string{"VK_KHR_display_swapchain", "VK_KHR_swapchain"}
	if len(enabled) != len(want) {
		t.Fatalf("EnabledExtensions: got %v, want %v", enabled, want)
	}
	for i := range want {
		if enabled[i] != want[i] {
			t.Errorf("EnabledExtensions[%d]: got %q, want %q", i, enabled[i], want[i])
		}
	}
}

func TestDeviceBackReference(t *testing.T) {
	inst, _ := newTestInstance(t)
	pd := testPhysicalDevice(t, inst)
	dev, res := pd.CreateDevice(&core.DeviceCreateInfo{})
	if res != core.Success {
		t.Fatalf("CreateDevice: got %v, want Success", res)
	}
	defer dev.Destroy()

	if dev.PhysicalDevice() != pd {
		t.Error("device back-reference does not point at its physical device")
	}
}

func TestDestroyDevice(t *testing.T) {
	inst, _ := newTestInstance(t)
	pd := testPhysicalDevice(t, inst)
	dev, res := pd.CreateDevice(&core.DeviceCreateInfo{
		QueueCreateInfos: []core.QueueCreateInfo{{FamilyIndex: 0, Count: 2}},
	})
	if res != core.Success {
		t.Fatalf("CreateDevice: got %v, want Success", res)
	}

	dev.Destroy()
	// Families that were never requested hold nil arrays; destroying
	// twice must not trip over them either.
	dev.Destroy()

	if got := dev.QueueCount(0); got != 0 {
		t.Errorf("QueueCount(0) after Destroy: got %d, want 0", got)
	}
}

func TestSurfaceSupport(t *testing.T) {
	inst, _ := newTestInstance(t)
	pd := testPhysicalDevice(t, inst)

	if !pd.SurfaceSupport(0) {
		t.Error("the single family must support presentation")
	}
	mustPanic(t, "SurfaceSupport out of range", func() { pd.SurfaceSupport(1) })
}
