package crosslink

// defaultBufferCapacity and defaultScratchCapacity match spec §6's
// configuration note: the ring capacity C defaults to 512, the scratch
// capacity S to C/2.
const (
	defaultBufferCapacity  = 512
	defaultScratchCapacity = 256
	defaultOverwrite       = true
)

// config holds an Engine's construction-time settings.
type config struct {
	bufferCapacity  int
	scratchCapacity int
	overwrite       bool
}

// Option configures an Engine at construction time.
type Option func(*config)

// WithBufferCapacity sets the ring buffer's fixed capacity C. Must be
// large enough to hold the largest frame expected on the link.
func WithBufferCapacity(capacity int) Option {
	return func(c *config) {
		c.bufferCapacity = capacity
	}
}

// WithScratchCapacity sets the scratch buffer's fixed capacity S. The
// scratch buffer linearizes inbound frames that straddle the ring's wrap
// boundary. S also caps outbound frames (SendObject returns ObjectTooLarge
// above it), but SendObject assembles each frame in a newly allocated
// wire.Writer, not in the scratch buffer.
func WithScratchCapacity(capacity int) Option {
	return func(c *config) {
		c.scratchCapacity = capacity
	}
}

// WithOverwrite selects the ring's ingestion policy: true lets ingestion
// drop the oldest buffered bytes to make room for new ones, false never
// displaces buffered data in favor of new reads (spec §4.1).
func WithOverwrite(overwrite bool) Option {
	return func(c *config) {
		c.overwrite = overwrite
	}
}
