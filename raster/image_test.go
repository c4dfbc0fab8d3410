// Copyright 2018 Zanicar. All rights reserved.
// Utilizes a BSD-3 license. Refer to the included LICENSE file for details.

package raster

import "testing"

func TestNewValidatesBufferLength(t *testing.T) {
	if _, err := New(4, 4, 3, make([]byte, 4*4*3)); err != nil {
		t.Fatalf("New: unexpected error: %v", err)
	}
	if _, err := New(4, 4, 3, make([]byte, 4*4*3-1)); err == nil {
		t.Fatal("New: expected error for short buffer")
	}
}

func TestNewRejectsBadChannelCount(t *testing.T) {
	for _, c := range []int{0, 5, -1} {
		if _, err := New(2, 2, c, make([]byte, 2*2*4)); err == nil {
			t.Fatalf("New: expected error for channel count %d", c)
		}
	}
}

func TestCloneIsIndependentAndOwned(t *testing.T) {
	src, err := New(2, 2, 1, []byte{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if src.Owned() {
		t.Fatal("borrowed image reported as owned")
	}

	clone := src.Clone()
	if !clone.Owned() {
		t.Fatal("clone not marked owned")
	}
	clone.Pix[0] = 99
	if src.Pix[0] == 99 {
		t.Fatal("mutating clone affected the borrowed source buffer")
	}
}

func TestOffset(t *testing.T) {
	img, err := New(3, 2, 2, make([]byte, 3*2*2))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got, want := img.Offset(0, 0, 0), 0; got != want {
		t.Errorf("Offset(0,0,0) = %d, want %d", got, want)
	}
	if got, want := img.Offset(1, 0, 1), 3; got != want {
		t.Errorf("Offset(1,0,1) = %d, want %d", got, want)
	}
	if got, want := img.Offset(0, 1, 0), 6; got != want {
		t.Errorf("Offset(0,1,0) = %d, want %d", got, want)
	}
}

func TestReleaseOnlyClearsOwnedBuffers(t *testing.T) {
	borrowed, _ := New(1, 1, 1, []byte{5})
	borrowed.Release()
	if borrowed.Pix == nil {
		t.Fatal("Release cleared a borrowed buffer")
	}

	owned := borrowed.Clone()
	owned.Release()
	if owned.Pix != nil {
		t.Fatal("Release did not clear an owned buffer")
	}
	if owned.Owned() {
		t.Fatal("Release did not reset the owned flag")
	}
}
