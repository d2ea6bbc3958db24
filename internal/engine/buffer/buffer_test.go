package buffer

import (
	"strings"
	"testing"

	"github.com/dshills/squall/internal/engine/piecetree"
)

func TestNewFromStringRoundTrip(t *testing.T) {
	b := NewFromString("hello\nworld")
	if got := b.Text(); got != "hello\nworld" {
		t.Errorf("Text() = %q, want %q", got, "hello\nworld")
	}
	if got := b.Len(); got != 11 {
		t.Errorf("Len() = %d, want 11", got)
	}
}

func TestLineCountExactMode(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 1},
		{"single line", "hello", 1},
		{"two lines", "hello\nworld", 2},
		{"trailing newline", "hello\nworld\n", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewFromString(tt.text)
			got, known := b.LineCount()
			if !known {
				t.Fatal("small buffer should have a known line count")
			}
			if got != tt.want {
				t.Errorf("LineCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLineCountLargeFileMode(t *testing.T) {
	content := strings.Repeat("0123456789abcde\n", 64) // 1 KiB
	b := NewFromString(content, WithLargeFileThreshold(256))

	if _, known := b.LineCount(); known {
		t.Error("content above the threshold should have an unknown line count")
	}
	if got := b.Len(); got != len(content) {
		t.Errorf("Len() = %d, want %d", got, len(content))
	}
}

func TestInsertAndDelete(t *testing.T) {
	b := NewFromString("hello world")

	if err := b.Insert(6, "big "); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if got := b.Text(); got != "hello big world" {
		t.Errorf("after insert Text() = %q, want %q", got, "hello big world")
	}

	if err := b.Delete(5, 9); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got := b.Text(); got != "hello world" {
		t.Errorf("after delete Text() = %q, want %q", got, "hello world")
	}
}

func TestInsertOutOfRange(t *testing.T) {
	b := NewFromString("abc")
	if err := b.Insert(10, "x"); err != ErrOffsetOutOfRange {
		t.Errorf("Insert(10) error = %v, want ErrOffsetOutOfRange", err)
	}
	if err := b.Insert(-1, "x"); err != ErrOffsetOutOfRange {
		t.Errorf("Insert(-1) error = %v, want ErrOffsetOutOfRange", err)
	}
}

func TestDeleteInvalidRange(t *testing.T) {
	b := NewFromString("abc")
	if err := b.Delete(2, 1); err != ErrRangeInvalid {
		t.Errorf("Delete(2, 1) error = %v, want ErrRangeInvalid", err)
	}
	if err := b.Delete(0, 9); err != ErrOffsetOutOfRange {
		t.Errorf("Delete(0, 9) error = %v, want ErrOffsetOutOfRange", err)
	}
}

func TestEditsBumpRevision(t *testing.T) {
	b := NewFromString("abc")
	r0 := b.Revision()
	if err := b.Insert(0, "x"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if b.Revision() == r0 {
		t.Error("Insert should produce a new revision")
	}
}

func TestSnapshotSurvivesEdits(t *testing.T) {
	b := NewFromString("one\ntwo\n")
	snap := b.Snapshot()

	if err := b.Insert(4, "TWO "); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := b.Delete(0, 2); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if got := snap.TextRange(0, snap.Len()); got != "one\ntwo\n" {
		t.Errorf("snapshot text = %q, want original %q", got, "one\ntwo\n")
	}
}

func TestSnapshotDiffAfterEdit(t *testing.T) {
	b := NewFromString("one\ntwo\nthree\n")
	before := b.Snapshot()

	if err := b.Insert(4, "2:"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	after := b.Snapshot()

	d := piecetree.Diff(before.Root(), after.Root())
	if d.Equal {
		t.Fatal("edit should produce a diff")
	}
	if d.ByteRange.Start > 4 || d.ByteRange.End < 6 {
		t.Errorf("ByteRange = %v, must cover inserted bytes 4..6", d.ByteRange)
	}
	if !d.LinesKnown {
		t.Error("small buffer diff should have a known line range")
	}
}

func TestTextRangeClamping(t *testing.T) {
	b := NewFromString("hello")
	if got := b.TextRange(-3, 99); got != "hello" {
		t.Errorf("TextRange(-3, 99) = %q, want %q", got, "hello")
	}
	if got := b.TextRange(3, 2); got != "" {
		t.Errorf("TextRange(3, 2) = %q, want empty", got)
	}
}

func TestByteAt(t *testing.T) {
	b := NewFromString("abc")
	if c, ok := b.ByteAt(1); !ok || c != 'b' {
		t.Errorf("ByteAt(1) = %q, %v, want 'b', true", c, ok)
	}
	if _, ok := b.ByteAt(3); ok {
		t.Error("ByteAt(3) should be out of range")
	}
}

func TestLineColToPosition(t *testing.T) {
	b := NewFromString("ab\ncdef\ng")
	snap := b.Snapshot()

	tests := []struct {
		line, col int
		want      int
	}{
		{0, 0, 0},
		{0, 1, 1},
		{0, 99, 2},  // clamped to line end
		{1, 0, 3},
		{1, 4, 7},
		{2, 0, 8},
		{99, 0, 8},  // past the last line: last line start
	}

	for _, tt := range tests {
		if got := snap.LineColToPosition(tt.line, tt.col); got != tt.want {
			t.Errorf("LineColToPosition(%d, %d) = %d, want %d", tt.line, tt.col, got, tt.want)
		}
	}
}

func TestLineIteratorFindsLineStart(t *testing.T) {
	b := NewFromString("aaaa\nbbbb\ncccc\n")

	tests := []struct {
		startByte int
		wantPos   int
	}{
		{0, 0},    // exact start stays put
		{1, 5},    // mid-line scans forward to the next line start
		{5, 10},   // a line-start estimate still scans forward
		{12, 15},  // inside the last terminated line
		{99, 15},  // clamped past the end
	}

	for _, tt := range tests {
		it := b.LineIterator(tt.startByte, 8)
		if got := it.CurrentPosition(); got != tt.wantPos {
			t.Errorf("LineIterator(%d).CurrentPosition() = %d, want %d", tt.startByte, got, tt.wantPos)
		}
	}
}

func TestLineIteratorTextAndNext(t *testing.T) {
	b := NewFromString("aaaa\nbbbb\ncccc")
	it := b.LineIterator(0, 8)

	if got := it.Text(); got != "aaaa" {
		t.Errorf("Text() = %q, want %q", got, "aaaa")
	}
	if !it.Next() {
		t.Fatal("Next() should advance to the second line")
	}
	if got := it.Text(); got != "bbbb" {
		t.Errorf("Text() = %q, want %q", got, "bbbb")
	}
	if !it.Next() {
		t.Fatal("Next() should advance to the third line")
	}
	if got := it.Text(); got != "cccc" {
		t.Errorf("Text() = %q, want %q", got, "cccc")
	}
	if it.Next() {
		t.Error("Next() past the last line should return false")
	}
}

func TestEmptyBuffer(t *testing.T) {
	b := New()
	if got := b.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
	if got, known := b.LineCount(); !known || got != 1 {
		t.Errorf("LineCount() = %d (known=%v), want 1 known", got, known)
	}
	if got := b.Text(); got != "" {
		t.Errorf("Text() = %q, want empty", got)
	}
}
