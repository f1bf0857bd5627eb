package fixture

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported fixture format")
	ErrBadViewport       = errors.New("viewport needs a positive width and height")
	ErrUnknownKind       = errors.New("unknown node kind")
	ErrUnknownDirection  = errors.New("unknown direction")
	ErrUnknownJustify    = errors.New("unknown justify")
	ErrUnknownAlign      = errors.New("unknown align")
	ErrUnknownText       = errors.New("unknown text direction")
	ErrUnknownVisibility = errors.New("unknown visibility")
	ErrUnknownEdge       = errors.New("unknown safe-area edge")
	ErrUnknownAxis       = errors.New("unknown match-parent axis")
	ErrBadNumber         = errors.New("not a number")
	ErrBadLength         = errors.New("not a length")
	ErrBadEdges          = errors.New("edges need 1, 2 or 4 numbers")
	ErrBadPair           = errors.New("need [width, height]")
	ErrBadRect           = errors.New("need [x, y, width, height]")
	ErrSpacerChildren    = errors.New("spacer cannot have children")
	ErrFrameMismatch     = errors.New("frame mismatch")
	ErrMissingElement    = errors.New("no element with that name")
)
