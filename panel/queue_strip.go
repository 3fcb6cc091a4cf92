package panel

// PixelQueue is a hardware LED transmit FIFO such as piolib.WS2812B. A put
// into a full queue is discarded by the hardware.
type PixelQueue interface {
	IsQueueFull() bool
	PutRaw(grb uint32)
}

// QueueStrip is a Strip on a PixelQueue. PushPixel waits for room, so every
// word of a frame reaches the LEDs however fast the caller pushes.
type QueueStrip struct {
	q PixelQueue
}

// NewQueueStrip wraps q. A nil q gives a strip that drops every pixel.
func NewQueueStrip(q PixelQueue) *QueueStrip {
	return &QueueStrip{q: q}
}

// PushPixel queues c. The FIFO drains one word about every 30us.
func (s *QueueStrip) PushPixel(c Color) {
	if s.q == nil {
		return
	}
	for s.q.IsQueueFull() {
	}
	// PIO shifts out the top 24 bits
	s.q.PutRaw(uint32(c) << 8)
}
