// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"errors"
	"testing"

	"github.com/devblok/vkcore/core"
)

// fakeProber stands in for the DRM node in tests.
type fakeProber struct {
	chip       uint32
	tiling     bool
	branches   bool
	etc1       bool
	threadedFS bool
	madvise    bool

	failWith error
	closed   int
}

var errProbe = errors.New("probe failed")

func (p *fakeProber) ChipVersion() (uint32, error) {
	if p.failWith != nil {
		return 0, p.failWith
	}
	return p.chip, nil
}

func (p *fakeProber) TilingSupported() (bool, error)      { return p.tiling, p.failWith }
func (p *fakeProber) ControlFlowSupported() (bool, error) { return p.branches, p.failWith }
func (p *fakeProber) ETC1Supported() (bool, error)        { return p.etc1, p.failWith }
func (p *fakeProber) ThreadedFSSupported() (bool, error)  { return p.threadedFS, p.failWith }
func (p *fakeProber) MadviseSupported() (bool, error)     { return p.madvise, p.failWith }

func (p *fakeProber) Close() error {
	p.closed++
	return nil
}

// newTestInstance creates an instance over a fake prober and
// registers cleanup.
func newTestInstance(t *testing.T) (*core.Instance, *fakeProber) {
	t.Helper()
	prober := &fakeProber{chip: 21, tiling: true, branches: true, madvise: true}
	inst, res := core.CreateInstance(&core.InstanceCreateInfo{Prober: prober})
	if res != core.Success {
		t.Fatalf("CreateInstance: got %v, want Success", res)
	}
	t.Cleanup(inst.Destroy)
	return inst, prober
}

// testPhysicalDevice fetches the single physical device.
func testPhysicalDevice(t *testing.T, inst *core.Instance) *core.PhysicalDevice {
	t.Helper()
	devs := make([]*core.PhysicalDevice, 1)
	n, res := inst.EnumeratePhysicalDevices(devs)
	if n != 1 || res != core.Success {
		t.Fatalf("EnumeratePhysicalDevices: got (%d, %v), want (1, Success)", n, res)
	}
	return devs[0]
}

// mustPanic asserts that fn panics.
func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
