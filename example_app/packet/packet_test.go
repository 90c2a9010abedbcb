package packet

import "testing"

func TestBuildValidFrame(t *testing.T) {
	var b Builder
	b.SetNode(7)
	b.SetData(0xCAFEBABE)
	b.Build()

	frame := b.Frame()
	if !frame.ConfigValid {
		t.Fatal("expected a valid frame")
	}
	if frame.HeaderID != FastConfigHeader {
		t.Errorf("expected header %#x, got %#x", FastConfigHeader, frame.HeaderID)
	}
	if frame.NodeNum != 7 {
		t.Errorf("expected node 7, got %d", frame.NodeNum)
	}
	if frame.Data != 0xCAFEBABE {
		t.Errorf("expected data 0xCAFEBABE, got %#x", frame.Data)
	}
}

func TestBuildRejectsOutOfBoundsNode(t *testing.T) {
	var b Builder
	b.SetNode(MaxNodeNum + 1)
	b.Build()

	if b.Frame().ConfigValid {
		t.Error("expected an out-of-bounds node to invalidate the frame")
	}
}
