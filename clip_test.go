package engine

import "testing"

func TestClipSetsEqual(t *testing.T) {
	ctx := NewContext()
	p1 := ctx.NewPath()
	p2 := ctx.NewPath()

	a := []ClipDescriptor{{Path: p1, Transform: Identity()}}
	b := []ClipDescriptor{{Path: p1, Transform: Identity()}}
	c := []ClipDescriptor{{Path: p2, Transform: Identity()}}
	d := []ClipDescriptor{{Path: p1, Transform: Translate(1, 0)}}

	if !clipSetsEqual(a, b) {
		t.Error("identical clip sets should compare equal")
	}
	if clipSetsEqual(a, c) {
		t.Error("clip sets with different paths should not compare equal")
	}
	if clipSetsEqual(a, d) {
		t.Error("clip sets with different transforms should not compare equal")
	}
	if !clipSetsEqual(nil, nil) {
		t.Error("two empty clip sets should compare equal")
	}
	if clipSetsEqual(a, nil) {
		t.Error("a non-empty set should not equal an empty one")
	}
}

func TestClipPathRespectsMaxDepth(t *testing.T) {
	ctx := NewContext()
	r := ctx.NewRenderer()

	for i := 0; i < maxClipDepth+5; i++ {
		r.ClipPath(ctx.NewPath())
	}

	if got := len(r.stack[len(r.stack)-1].clips); got != maxClipDepth {
		t.Errorf("clip stack depth = %d, want capped at %d", got, maxClipDepth)
	}
}

func TestSaveRestoreClipIsolation(t *testing.T) {
	ctx := NewContext()
	r := ctx.NewRenderer()

	r.Save()
	r.ClipPath(ctx.NewPath())
	if len(r.stack[len(r.stack)-1].clips) != 1 {
		t.Fatal("expected one clip after ClipPath inside Save")
	}
	r.Restore()

	if len(r.stack[len(r.stack)-1].clips) != 0 {
		t.Error("Restore should drop clips added after the matching Save")
	}
}
