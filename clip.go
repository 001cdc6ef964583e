package engine

// maxClipDepth bounds the number of clip descriptors active at any
// stack depth (§3's "Renderer stack entry").
const maxClipDepth = 16

// ClipDescriptor is a (path, transform) pair captured at ClipPath call
// time (§3).
type ClipDescriptor struct {
	Path      *Path
	Transform Matrix
}

// stackEntry is one save/restore frame: the current affine transform
// plus the clip descriptors accumulated at that depth.
type stackEntry struct {
	transform Matrix
	clips     []ClipDescriptor
}

// clipSetsEqual reports whether a and b describe the same clip state:
// same length, same paths by identity, same transforms, in the same
// order. This is the "pending == applied" test of §4.5's clipping
// protocol.
func clipSetsEqual(a, b []ClipDescriptor) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Path != b[i].Path || a[i].Transform != b[i].Transform {
			return false
		}
	}
	return true
}
