package layout

// HostKind tags which FlexHost variant a container uses.
type HostKind uint8

const (
	HostFlex   HostKind = iota // Generic flex container
	HostLinear                 // Row/Column linear layout
)

func (k HostKind) String() string {
	switch k {
	case HostFlex:
		return "flex"
	case HostLinear:
		return "linear"
	default:
		return "unknown"
	}
}

// FlexHost is the capability a container brings to the engine.
// The engine switches on Kind rather than on the concrete type.
type FlexHost interface {
	Kind() HostKind

	// ContainerStyle returns the container's declared properties.
	ContainerStyle() ContainerStyle

	// ApplyPatternOperation adjusts pass-wide defaults before classification.
	ApplyPatternOperation(s *FlexPassState)
}

// FlexContainerHost is the generic flex variant: children shrink by default.
type FlexContainerHost struct {
	Style ContainerStyle
}

func (h FlexContainerHost) Kind() HostKind                 { return HostFlex }
func (h FlexContainerHost) ContainerStyle() ContainerStyle { return h.Style }

func (h FlexContainerHost) ApplyPatternOperation(s *FlexPassState) {
	s.defaultShrink = 1
}

// LinearLayoutHost is the Row/Column variant: children keep their natural
// size unless they opt into shrinking.
type LinearLayoutHost struct {
	Style ContainerStyle
}

func (h LinearLayoutHost) Kind() HostKind                 { return HostLinear }
func (h LinearLayoutHost) ContainerStyle() ContainerStyle { return h.Style }

func (h LinearLayoutHost) ApplyPatternOperation(s *FlexPassState) {
	s.defaultShrink = 0
}

var (
	_ FlexHost = FlexContainerHost{}
	_ FlexHost = LinearLayoutHost{}
)
