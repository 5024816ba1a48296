// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

// QueueCreateInfo requests Count queues from one family.
type QueueCreateInfo struct {
	FamilyIndex int
	Count       int
}

// DeviceCreateInfo is the fixed creation structure for CreateDevice.
type DeviceCreateInfo struct {
	// QueueCreateInfos may be empty, leaving every family without
	// queues.
	QueueCreateInfos []QueueCreateInfo

	// EnabledExtensions are negotiated against the device extension
	// registry, all-or-nothing.
	EnabledExtensions []string

	// EnabledFeatures is the requested feature set. Nil means every
	// feature stays disabled.
	EnabledFeatures *FeatureSet
}

// Device is the logical handle through which queues are obtained.
// The caller must destroy all device-derived objects before Destroy,
// and the device before its instance.
type Device struct {
	physicalDevice *PhysicalDevice // non-owning back-reference

	// Per-family queue table, fixed size, indexed by family. An
	// entry stays nil until that family is requested at creation.
	queues [NumQueueFamilies][]*Queue

	enabledExtensions []int
	enabledFeatures   FeatureSet
}

// Queue is an ordered submission endpoint within a queue family.
type Queue struct {
	device *Device // non-owning back-reference
	family int
	index  int

	// lastEmitSeqno orders submitted work. It starts at zero and is
	// advanced only by the submission path, monotonically.
	lastEmitSeqno uint64
}

// CreateDevice negotiates the requested device extensions and
// features against the registry snapshot and builds the per-family
// queue table. Validation happens before anything is constructed, so
// a capability rejection never leaves a partially built device
// behind.
func (pd *PhysicalDevice) CreateDevice(info *DeviceCreateInfo) (*Device, Result) {
	if info == nil {
		panic("vkcore: CreateDevice with nil info")
	}
	enabledExt, res := negotiateExtensions(deviceExtensions, info.EnabledExtensions)
	if res != Success {
		return nil, res
	}
	enabledFeat, res := negotiateFeatures(info.EnabledFeatures)
	if res != Success {
		return nil, res
	}

	dev := &Device{
		physicalDevice:    pd,
		enabledExtensions: enabledExt,
		enabledFeatures:   enabledFeat,
	}
	for _, qi := range info.QueueCreateInfos {
		if qi.FamilyIndex < 0 || qi.FamilyIndex >= NumQueueFamilies {
			panic("vkcore: queue family index out of range")
		}
		if qi.Count < 0 {
			panic("vkcore: negative queue count")
		}
		queues := make([]*Queue, qi.Count)
		for i := range queues {
			queues[i] = &Queue{device: dev, family: qi.FamilyIndex, index: i}
		}
		dev.queues[qi.FamilyIndex] = queues
	}
	return dev, Success
}

// Queue returns the queue at (family, index). Both indices must be
// within the bounds established at creation time; anything else is a
// caller error, not a recoverable condition.
func (d *Device) Queue(family, index int) *Queue {
	if family < 0 || family >= NumQueueFamilies {
		panic("vkcore: queue family index out of range")
	}
	queues := d.queues[family]
	if index < 0 || index >= len(queues) {
		panic("vkcore: queue index out of range")
	}
	return queues[index]
}

// QueueCount reports how many queues were created at family.
func (d *Device) QueueCount(family int) int {
	if family < 0 || family >= NumQueueFamilies {
		panic("vkcore: queue family index out of range")
	}
	return len(d.queues[family])
}

// PhysicalDevice returns the owning physical device.
func (d *Device) PhysicalDevice() *PhysicalDevice { return d.physicalDevice }

// EnabledExtensions returns the names of the device extensions
// accepted at creation, in request order.
func (d *Device) EnabledExtensions() []string {
	return extensionNames(deviceExtensions, d.enabledExtensions)
}

// EnabledFeatures returns the feature snapshot negotiated at
// creation. It is a copy of the accepted request, not a reference.
func (d *Device) EnabledFeatures() FeatureSet { return d.enabledFeatures }

// Destroy drops every per-family queue array and invalidates the
// device. Quiescence is the caller's responsibility; destruction does
// not wait for submitted work.
func (d *Device) Destroy() {
	if d == nil {
		return
	}
	for i := range d.queues {
		d.queues[i] = nil
	}
	d.physicalDevice = nil
}

// Device returns the owning device.
func (q *Queue) Device() *Device { return q.device }

// Family returns the queue family index the queue belongs to.
func (q *Queue) Family() int { return q.family }

// Index returns the queue's index within its family.
func (q *Queue) Index() int { return q.index }

// LastEmitSeqno returns the sequence number of the most recently
// submitted work, zero for a queue that has not submitted anything.
func (q *Queue) LastEmitSeqno() uint64 { return q.lastEmitSeqno }

// emitSeqno hands out the next sequence number. Submission-path only;
// the counter never decreases.
func (q *Queue) emitSeqno() uint64 {
	q.lastEmitSeqno++
	return q.lastEmitSeqno
}
