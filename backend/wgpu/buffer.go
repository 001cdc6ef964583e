package wgpu

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gpucanvas/engine"
)

// ErrProviderNotHAL is returned by NewBrokerFromProvider when the given
// gpucontext.DeviceProvider was not built on gogpu/wgpu's HAL, and so
// cannot back a Broker.
var ErrProviderNotHAL = errors.New("wgpu: device provider is not HAL-backed")

// NewBrokerFromProvider builds a Broker from a host-supplied
// gpucontext.DeviceProvider, following the "receive the device from the
// host, don't create one" integration principle: a viewer application
// owns the GPU device and hands it down for the engine's buffer uploads
// to share.
func NewBrokerFromProvider(provider gpucontext.DeviceProvider) (*Broker, error) {
	if provider == nil {
		return nil, fmt.Errorf("wgpu: nil device provider")
	}
	device, ok := provider.Device().(hal.Device)
	if !ok {
		return nil, ErrProviderNotHAL
	}
	queue, ok := provider.Queue().(hal.Queue)
	if !ok {
		return nil, ErrProviderNotHAL
	}
	return NewBroker(device, queue), nil
}

// bufferDescriptorFor builds a HAL buffer descriptor for a vertex or index
// upload. Vertex and index buffers are both created with CopyDst so the
// broker can update them in place on a size match (engine.RequestBufferFunc,
// §4.6).
func bufferDescriptorFor(kind engine.BufferKind, size int, label string) hal.BufferDescriptor {
	usage := gputypes.BufferUsageCopyDst
	switch kind {
	case engine.VertexBufferKind:
		usage |= gputypes.BufferUsageVertex
	case engine.IndexBufferKind:
		usage |= gputypes.BufferUsageIndex
	}
	return hal.BufferDescriptor{
		Label: label,
		Size:  uint64(size),
		Usage: usage,
	}
}

// Broker adapts a hal.Device/hal.Queue pair into the engine's buffer
// broker callbacks (RequestBufferFunc/DestroyBufferFunc), tracking the
// live HAL buffer behind each engine.BufferHandle it hands out. This is
// the reference implementation of §4.6's coupling point.
type Broker struct {
	device hal.Device
	queue  hal.Queue

	mu      sync.Mutex
	next    engine.BufferHandle
	buffers map[engine.BufferHandle]hal.Buffer
}

// NewBroker creates a Broker that allocates buffers on device and
// uploads through queue.
func NewBroker(device hal.Device, queue hal.Queue) *Broker {
	return &Broker{
		device:  device,
		queue:   queue,
		buffers: make(map[engine.BufferHandle]hal.Buffer),
	}
}

// Request implements engine.RequestBufferFunc. A zero handle creates a new
// HAL buffer and uploads data into it via the queue; a non-zero handle
// with data of the size the buffer already has updates it in place.
// Returning zero signals rejection, per §4.6.
func (b *Broker) Request(handle engine.BufferHandle, kind engine.BufferKind, data []byte, size int) engine.BufferHandle {
	b.mu.Lock()
	defer b.mu.Unlock()

	if handle != 0 {
		buf, ok := b.buffers[handle]
		if !ok {
			return 0
		}
		b.queue.WriteBuffer(buf, 0, data)
		return handle
	}

	desc := bufferDescriptorFor(kind, size, fmt.Sprintf("engine-%s-buffer", kind.String()))
	halBuf, err := b.device.CreateBuffer(&desc)
	if err != nil {
		engine.Logger().Warn("wgpu: buffer create failed", "kind", kind.String(), "size", size, "err", err)
		return 0
	}
	b.queue.WriteBuffer(halBuf, 0, data)

	b.next++
	h := b.next
	b.buffers[h] = halBuf
	return h
}

// Destroy implements engine.DestroyBufferFunc.
func (b *Broker) Destroy(handle engine.BufferHandle) {
	b.mu.Lock()
	defer b.mu.Unlock()

	buf, ok := b.buffers[handle]
	if !ok {
		return
	}
	delete(b.buffers, handle)
	b.device.DestroyBuffer(buf)
}
