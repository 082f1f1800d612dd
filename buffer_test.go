package cursorbuf

import (
	"errors"
	"io"
	"testing"
)

type countingAllocator struct {
	allocs, uninitialized int
}

func (a *countingAllocator) Alloc(size int, fill byte) []byte {
	a.allocs++
	b := make([]byte, size)
	for i := range b {
		b[i] = fill
	}
	return b
}

func (a *countingAllocator) AllocUninitialized(size int) []byte {
	a.uninitialized++
	b := make([]byte, size)
	for i := range b {
		b[i] = 0xee
	}
	return b
}

func TestEmptyBuffer(t *testing.T) {
	b := New()

	if b.IsBuffer() {
		t.Error("expected a new buffer to have no region")
	}

	if b.Encoding() != UTF8 {
		t.Errorf("expected utf-8, got %v", b.Encoding())
	}

	if b.Len() != 0 || b.Index() != 0 || b.Available() != 0 {
		t.Errorf("expected zero length, index and available, got %d, %d, %d", b.Len(), b.Index(), b.Available())
	}

	if b.File() != nil {
		t.Error("expected no file handle")
	}

	if !b.IsEmpty() || !b.IsFull() {
		t.Error("a buffer without a region is both empty and full")
	}

	if b.SetIndex(3) != 0 {
		t.Error("expected the index to stay at 0 without a region")
	}
}

func TestAlloc(t *testing.T) {
	cases := []struct {
		alloc func(b *Buffer) error
		size  int
	}{
		{func(b *Buffer) error { return b.Alloc(0, 0) }, 0},
		{func(b *Buffer) error { return b.Alloc(1, 0) }, 1},
		{func(b *Buffer) error { return b.AllocUninitialized(1) }, 1},
		{func(b *Buffer) error { return b.AllocKiloBytes(1, 0) }, 1024},
		{func(b *Buffer) error { return b.AllocKiloBytesUninitialized(1) }, 1024},
		{func(b *Buffer) error { return b.AllocMegaBytes(1, 0) }, 1048576},
		{func(b *Buffer) error { return b.AllocMegaBytesUninitialized(1) }, 1048576},
	}

	for _, c := range cases {
		b := New()
		if err := c.alloc(b); err != nil {
			t.Error(err)
			continue
		}

		if !b.IsBuffer() {
			t.Error("expected a region after allocation")
		}

		if b.Len() != c.size || b.Index() != 0 || b.Available() != c.size {
			t.Errorf("expected length %d, index 0, available %d, got %d, %d, %d",
				c.size, c.size, b.Len(), b.Index(), b.Available())
		}
	}
}

func TestAllocInvalid(t *testing.T) {
	b := New()

	for _, err := range []error{
		b.Alloc(-1, 0),
		b.AllocUninitialized(-1),
		b.AllocKiloBytes(-1, 0),
		b.AllocMegaBytesUninitialized(int(^uint(0) >> 1)),
	} {
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	}

	if b.IsBuffer() {
		t.Error("failed allocations should not set a region")
	}
}

func TestAllocFill(t *testing.T) {
	b := New()
	if err := b.Alloc(4, 'x'); err != nil {
		t.Fatal(err)
	}

	if b.String() != "xxxx" {
		t.Errorf("expected xxxx, got %q", b.String())
	}

	if err := b.AllocFill(5, "ab"); err != nil {
		t.Fatal(err)
	}

	if b.String() != "ababa" {
		t.Errorf("expected ababa, got %q", b.String())
	}

	if err := b.AllocFill(2, ""); err != nil {
		t.Fatal(err)
	}

	if b.ToHex() != "0000" {
		t.Errorf("expected zero fill, got %s", b.ToHex())
	}
}

func TestAllocResetsIndex(t *testing.T) {
	b := OfString("abc", UTF8)
	if b.Index() != 3 {
		t.Fatalf("expected index 3, got %d", b.Index())
	}

	b.Alloc(10, 0)
	if b.Index() != 0 {
		t.Errorf("expected Alloc to reset the index, got %d", b.Index())
	}
}

func TestWithAllocator(t *testing.T) {
	a := &countingAllocator{}
	b := New(WithAllocator(a))

	b.Alloc(2, 0)
	b.AllocUninitialized(2)
	b.Extend(2)
	b.Concat(OfString("x", UTF8))

	if a.allocs != 2 || a.uninitialized != 2 {
		t.Errorf("expected 2 allocs and 2 uninitialized allocs, got %d and %d", a.allocs, a.uninitialized)
	}

	if c := b.Clone(); a.uninitialized != 3 || !c.Equals(b) {
		t.Error("expected Clone to allocate through the same allocator")
	}
}

func TestFromSource(t *testing.T) {
	cases := []struct {
		init     func(b *Buffer)
		hex      string
		encoding Encoding
	}{
		{func(b *Buffer) { b.FromHex("616263") }, "616263", Hex},
		{func(b *Buffer) { b.FromAscii("abc") }, "616263", ASCII},
		{func(b *Buffer) { b.FromUtf8("é") }, "c3a9", UTF8},
		{func(b *Buffer) { b.FromBase64("YWJj") }, "616263", Base64},
		{func(b *Buffer) { b.FromBytes([]byte{1, 2}) }, "0102", UTF8},
		{func(b *Buffer) { b.FromString("é", Latin1) }, "e9", UTF8},
	}

	for _, c := range cases {
		b := New()
		c.init(b)

		if b.ToHex() != c.hex {
			t.Errorf("expected %s, got %s", c.hex, b.ToHex())
		}

		if b.Index() != b.Len() {
			t.Errorf("expected the index at the end (%d), got %d", b.Len(), b.Index())
		}

		if b.Encoding() != c.encoding {
			t.Errorf("expected encoding %v, got %v", c.encoding, b.Encoding())
		}
	}

	b := New()
	b.FromHex("616263")
	if b.ToString(UTF8) != "abc" {
		t.Errorf("expected abc, got %q", b.ToString(UTF8))
	}
}

func TestOfBytesCopies(t *testing.T) {
	p := []byte("abc")
	b := OfBytes(p)
	p[0] = 'x'

	if b.String() != "abc" {
		t.Error("OfBytes should not share storage with its argument")
	}
}

func TestExtend(t *testing.T) {
	b := New()
	b.Alloc(4, 0)
	b.Append("abcd")
	b.SetIndex(2)

	if err := b.Extend(12); err != nil {
		t.Fatal(err)
	}

	if b.Len() != 16 {
		t.Errorf("expected length 16, got %d", b.Len())
	}

	if b.Index() != 2 {
		t.Errorf("expected index 2, got %d", b.Index())
	}

	if b.ToHex() != "61626364000000000000000000000000" {
		t.Errorf("unexpected content %s", b.ToHex())
	}

	if !errors.Is(b.Extend(-1), ErrInvalidInput) {
		t.Error("expected a negative extend to fail")
	}

	empty := New()
	if err := empty.Extend(3); err != nil || empty.Len() != 3 {
		t.Errorf("expected extending an empty buffer to allocate, got %d (%v)", empty.Len(), err)
	}
}

func TestAppend(t *testing.T) {
	b := New()
	b.Alloc(3, 0)

	for _, s := range []string{"a", "b", "c"} {
		if _, err := b.Append(s); err != nil {
			t.Fatal(err)
		}
	}

	if b.Index() != 3 {
		t.Errorf("expected index 3, got %d", b.Index())
	}

	if _, err := b.Append("d"); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("expected ErrCapacityExceeded, got %v", err)
	}

	if b.Index() != 3 || b.String() != "abc" {
		t.Error("a rejected append changed the buffer")
	}
}

func TestAppendAdvancesByEncodedLength(t *testing.T) {
	cases := []struct {
		encoding Encoding
		text     string
		n        int
	}{
		{UTF8, "é", 2},
		{UTF8, "日本", 6},
		{Latin1, "é", 1},
		{ASCII, "ab", 2},
		{Hex, "ff00", 2},
		{Base64, "YWJj", 3},
	}

	for _, c := range cases {
		b := New(WithEncoding(c.encoding))
		b.Alloc(c.n, 0)

		if !b.Fit(c.text) || b.EncodedLen(c.text) != c.n {
			t.Errorf("%v: expected %q to take %d bytes, got %d", c.encoding, c.text, c.n, b.EncodedLen(c.text))
			continue
		}

		n, err := b.Append(c.text)
		if err != nil || n != c.n || b.Index() != c.n {
			t.Errorf("%v: expected %d bytes appended, got %d, index %d (%v)", c.encoding, c.n, n, b.Index(), err)
		}

		if b.Available() != b.Len()-b.Index() || !b.IsFull() {
			t.Errorf("%v: expected a full buffer", c.encoding)
		}

		if b.Fit(c.text) {
			t.Errorf("%v: %q should not fit in a full buffer", c.encoding, c.text)
		}
	}
}

func TestWriteText(t *testing.T) {
	b := New()
	b.Alloc(4, 0)

	n, err := b.WriteTextAt("hello", 1)
	if err != nil {
		t.Fatal(err)
	}

	if n != 3 || b.Index() != 4 {
		t.Errorf("expected a truncated write of 3 bytes, got %d with index %d", n, b.Index())
	}

	if b.ToHex() != "0068656c" {
		t.Errorf("unexpected content %s", b.ToHex())
	}

	b.SetIndex(0)
	if n, _ := b.WriteText("a"); n != 1 || b.Index() != 1 {
		t.Errorf("expected WriteText to write at the index, got %d, %d", n, b.Index())
	}

	for _, off := range []int{-1, 5} {
		if _, err := b.WriteTextAt("x", off); !errors.Is(err, ErrIndexOutOfBounds) {
			t.Errorf("offset %d: expected ErrIndexOutOfBounds, got %v", off, err)
		}
	}

	if _, err := New().WriteText("x"); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected writing without a region to fail, got %v", err)
	}
}

func TestWriteTextKeepsRunesWhole(t *testing.T) {
	b := New()
	b.Alloc(3, 0)

	n, err := b.WriteText("aé日")
	if err != nil {
		t.Fatal(err)
	}

	if n != 3 || b.ToHex() != "61c3a9" {
		t.Errorf("expected a and é only, got %d bytes: %s", n, b.ToHex())
	}

	b.SetIndex(1)
	if n, _ := b.WriteText("日"); n != 0 || b.Index() != 1 {
		t.Errorf("expected nothing written, got %d bytes with index %d", n, b.Index())
	}
}

func TestIOWriterReader(t *testing.T) {
	b := New()
	b.Alloc(4, 0)

	if _, err := b.Write([]byte{1, 2, 3}); err != nil {
		t.Fatal(err)
	}

	if _, err := b.Write([]byte{4, 5}); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("expected ErrCapacityExceeded, got %v", err)
	}

	b.MoveIndex(Start)
	data, err := io.ReadAll(b)
	if err != nil {
		t.Fatal(err)
	}

	if len(data) != 4 || data[2] != 3 || !b.IsFull() {
		t.Errorf("unexpected read %v, index %d", data, b.Index())
	}
}

func TestIndexInvariant(t *testing.T) {
	b := New()
	b.Alloc(8, 0)

	steps := []func(){
		func() { b.Append("abc") },
		func() { b.SetIndex(100) },
		func() { b.FromString("xy", UTF8) },
		func() { b.Extend(3) },
		func() { b.SetIndex(-4) },
		func() { b.WriteTextAt("long text here", 2) },
		func() { b.Concat(OfString("123", UTF8)) },
		func() { b.AllocUninitialized(1) },
		func() { b.MoveIndex(End) },
		func() { b.FromBytes(nil) },
	}

	for i, step := range steps {
		step()

		if b.Index() < 0 || b.Index() > b.Len() {
			t.Errorf("step %d: index %d outside [0, %d]", i, b.Index(), b.Len())
		}

		if b.Available() != b.Len()-b.Index() {
			t.Errorf("step %d: available %d, expected %d", i, b.Available(), b.Len()-b.Index())
		}
	}
}
