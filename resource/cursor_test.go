package resource

import (
	"testing"
)

func TestDefaultCursor(t *testing.T) {
	cursor, err := NewCursor(DefaultCursor)
	if err != nil {
		t.Fatal(err)
	}
	if cursor.HotSpot != (HotSpot{}) {
		t.Fatalf("unexpected hot spot %+v", cursor.HotSpot)
	}

	expected := "" +
		"░       \n" +
		"░░      \n" +
		"░█░     \n" +
		"░██░    \n" +
		"░███░   \n" +
		"░██░░   \n" +
		"░ ░░    \n" +
		"        \n"
	if cursor.String() != expected {
		t.Fatalf("unexpected cursor:\n%s", cursor)
	}
}

func TestNewCursorShort(t *testing.T) {
	if _, err := NewCursor(DefaultCursor[:10]); err == nil {
		t.Fatal("expected an error")
	}
}

func TestCursorDrawTo(t *testing.T) {
	cursor, err := NewCursor(DefaultCursor)
	if err != nil {
		t.Fatal(err)
	}

	img := NewImage(4, 4)
	img.Clear(9)
	cursor.DrawTo(img, 1, 0, 7, 1)

	expected := []int{
		9, 1, 9, 9,
		9, 1, 1, 9,
		9, 1, 7, 1,
		9, 1, 7, 7,
	}
	for i, c := range img.Data() {
		if c != expected[i] {
			t.Errorf("%d: expected(%d) != actual(%d)", i, expected[i], c)
		}
	}
}
