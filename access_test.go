package cursorbuf

import (
	"errors"
	"testing"

	"github.com/performancecopilot/cursorbuf/numeral"
)

func TestAt(t *testing.T) {
	b := New()
	b.Alloc(3, 0)
	b.Append("a")
	b.Append("b")
	b.Append("c")

	cases := []struct {
		index int
		sys   numeral.System
		out   string
	}{
		{0, numeral.Decimal, "97"},
		{1, numeral.Decimal, "98"},
		{2, numeral.Decimal, "99"},
		{0, numeral.Binary, "1100001"},
		{0, numeral.Octal, "141"},
		{0, numeral.Hex, "61"},
		{-1, numeral.Decimal, "99"},
		{-3, numeral.Decimal, "97"},
	}

	for _, c := range cases {
		out, ok := b.At(c.index, c.sys)
		if !ok {
			t.Errorf("At(%d): expected a value", c.index)
			continue
		}

		if out != c.out {
			t.Errorf("At(%d, %v): expected %q, got %q", c.index, c.sys, c.out, out)
		}
	}

	for _, i := range []int{3, 100, -4} {
		if _, ok := b.At(i, numeral.Decimal); ok {
			t.Errorf("At(%d): expected no value", i)
		}
	}

	if _, ok := New().Byte(0); ok {
		t.Error("expected no value without a region")
	}

	if c, ok := b.Byte(-2); !ok || c != 'b' {
		t.Errorf("expected b, got %q", c)
	}
}

func TestSet(t *testing.T) {
	b := New()
	b.Alloc(2, 0)

	if err := b.Set(1, 255); err != nil {
		t.Fatal(err)
	}

	if c, _ := b.Byte(1); c != 255 {
		t.Errorf("expected 255, got %d", c)
	}

	for _, i := range []int{-1, 2} {
		if err := b.Set(i, 1); !errors.Is(err, ErrIndexOutOfBounds) {
			t.Errorf("Set(%d): expected ErrIndexOutOfBounds, got %v", i, err)
		}
	}

	for _, v := range []int{-1, 256} {
		if err := b.Set(0, v); !errors.Is(err, ErrValueOutOfRange) {
			t.Errorf("Set(0, %d): expected ErrValueOutOfRange, got %v", v, err)
		}
	}

	if err := New().Set(0, 1); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds without a region, got %v", err)
	}

	if b.Index() != 0 {
		t.Error("Set should not move the index")
	}
}

func TestSetSystems(t *testing.T) {
	cases := []struct {
		set  func(b *Buffer) error
		want byte
	}{
		{func(b *Buffer) error { return b.SetBinary(0, "1100001") }, 'a'},
		{func(b *Buffer) error { return b.SetOctal(0, "142") }, 'b'},
		{func(b *Buffer) error { return b.SetHex(0, "63") }, 'c'},
		{func(b *Buffer) error { return b.SetHex(0, "FF") }, 0xff},
		{func(b *Buffer) error { return b.SetChar(0, "d") }, 'd'},
		{func(b *Buffer) error { return b.SetChar(0, "éa") }, 0xe9},
	}

	for _, c := range cases {
		b := New()
		b.Alloc(1, 0)

		if err := c.set(b); err != nil {
			t.Error(err)
			continue
		}

		if got, _ := b.Byte(0); got != c.want {
			t.Errorf("expected %d, got %d", c.want, got)
		}
	}
}

func TestSetSystemsInvalid(t *testing.T) {
	b := New()
	b.Alloc(1, 0)

	cases := []struct {
		err  error
		want error
	}{
		{b.SetBinary(0, "102"), ErrInvalidNumeralFormat},
		{b.SetOctal(0, "9"), ErrInvalidNumeralFormat},
		{b.SetHex(0, "0x10"), ErrInvalidNumeralFormat},
		{b.SetHex(0, ""), ErrInvalidNumeralFormat},
		{b.SetBinary(0, "100000000"), ErrValueOutOfRange},
		{b.SetOctal(0, "400"), ErrValueOutOfRange},
		{b.SetHex(0, "100"), ErrValueOutOfRange},
		{b.SetHex(1, "10"), ErrIndexOutOfBounds},
		{b.SetChar(0, ""), ErrInvalidInput},
		{b.SetChar(0, "日"), ErrValueOutOfRange},
		{b.SetChar(1, "a"), ErrIndexOutOfBounds},
	}

	for i, c := range cases {
		if !errors.Is(c.err, c.want) {
			t.Errorf("case %d: expected %v, got %v", i, c.want, c.err)
		}
	}

	if c, _ := b.Byte(0); c != 0 {
		t.Errorf("failed sets modified the buffer: %d", c)
	}
}
