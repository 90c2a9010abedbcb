// Package packet is a small firmware-style module used to demonstrate the
// unit test framework: a builder that assembles radio configuration frames.
package packet

const (
	// FastConfigHeader identifies a high-speed configuration frame.
	FastConfigHeader uint16 = 0xA55A

	// MaxNodeNum is the highest addressable node on the link.
	MaxNodeNum uint8 = 31
)

// ConfigFrame is the frame assembled by Build.
type ConfigFrame struct {
	HeaderID    uint16
	NodeNum     uint8
	Data        uint32
	ConfigValid bool
}

// Builder collects configuration inputs and assembles frames.
type Builder struct {
	nodeNum uint8
	data    uint32
	frame   ConfigFrame
}

// SetNode sets the destination node for the next frame.
func (b *Builder) SetNode(n uint8) {
	b.nodeNum = n
}

// SetData sets the payload for the next frame.
func (b *Builder) SetData(d uint32) {
	b.data = d
}

// Build assembles the configuration frame from the staged inputs. A node
// number beyond MaxNodeNum invalidates the frame instead of producing one.
func (b *Builder) Build() {
	if b.nodeNum > MaxNodeNum {
		b.frame.ConfigValid = false
		return
	}
	b.frame = ConfigFrame{
		HeaderID:    FastConfigHeader,
		NodeNum:     b.nodeNum,
		Data:        b.data,
		ConfigValid: true,
	}
}

// Frame returns the most recently built frame.
func (b *Builder) Frame() ConfigFrame {
	return b.frame
}
