package ui

import "testing"

func TestNewHistory(t *testing.T) {
	h := NewHistory()
	if h.maxDepth != defaultMaxDepth {
		t.Errorf("expected maxDepth %d, got %d", defaultMaxDepth, h.maxDepth)
	}
	if h.CanUndo() {
		t.Error("new history should not be undoable")
	}
	if h.CanRedo() {
		t.Error("new history should not be redoable")
	}
}

func TestPushAndUndo(t *testing.T) {
	h := NewHistory()

	h.Push(MakeSnapshot(0, 64, "initial"))
	if !h.CanUndo() {
		t.Fatal("should be able to undo after push")
	}

	restored, ok := h.Undo(MakeSnapshot(255, 64, "current"))
	if !ok {
		t.Fatal("undo should succeed")
	}
	if restored.Value != 0 {
		t.Errorf("expected value 0 after undo, got %d", restored.Value)
	}
	if restored.Label != "initial" {
		t.Errorf("expected label 'initial', got %q", restored.Label)
	}
}

func TestUndoRedo(t *testing.T) {
	h := NewHistory()

	h.Push(MakeSnapshot(0, 64, "zero"))
	h.Push(MakeSnapshot(10, 64, "ten"))
	current := MakeSnapshot(255, 8, "narrowed")

	restored, ok := h.Undo(current)
	if !ok {
		t.Fatal("first undo should succeed")
	}
	if restored.Value != 10 || restored.BitWidth != 64 {
		t.Errorf("expected 10 @ 64 bits, got %d @ %d", restored.Value, restored.BitWidth)
	}

	if !h.CanRedo() {
		t.Fatal("should be able to redo")
	}
	redone, ok := h.Redo(restored)
	if !ok {
		t.Fatal("redo should succeed")
	}
	if redone.Value != 255 || redone.BitWidth != 8 {
		t.Errorf("expected 255 @ 8 bits after redo, got %d @ %d", redone.Value, redone.BitWidth)
	}
}

func TestPushClearsRedo(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(0, 64, "empty"))

	if _, ok := h.Undo(MakeSnapshot(1, 64, "one")); !ok {
		t.Fatal("undo should succeed")
	}
	if !h.CanRedo() {
		t.Fatal("should be able to redo after undo")
	}

	h.Push(MakeSnapshot(2, 64, "new action"))
	if h.CanRedo() {
		t.Error("redo stack should be cleared after push")
	}
}

func TestMaxDepth(t *testing.T) {
	h := &History{maxDepth: 3}

	for i := 0; i < 5; i++ {
		h.Push(MakeSnapshot(uint64(i), 64, ""))
	}

	if len(h.undoStack) != 3 {
		t.Errorf("expected undo stack length 3, got %d", len(h.undoStack))
	}
	if h.undoStack[0].Value != 2 {
		t.Errorf("expected oldest kept value 2, got %d", h.undoStack[0].Value)
	}
}

func TestUndoEmpty(t *testing.T) {
	h := NewHistory()
	if _, ok := h.Undo(MakeSnapshot(0, 64, "current")); ok {
		t.Error("undo on empty history should return false")
	}
}

func TestRedoEmpty(t *testing.T) {
	h := NewHistory()
	if _, ok := h.Redo(MakeSnapshot(0, 64, "current")); ok {
		t.Error("redo on empty history should return false")
	}
}

func TestClear(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(1, 64, "a"))
	h.Push(MakeSnapshot(2, 64, "b"))
	h.Undo(MakeSnapshot(3, 64, "current"))

	h.Clear()
	if h.CanUndo() || h.CanRedo() {
		t.Error("after clear, should not be able to undo or redo")
	}
}
