package tui

import (
	"reflect"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestWrapTextBreaksAtSpaces(t *testing.T) {
	got := wrapText("one two three", 7)
	want := []string{"one two", "three"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestWrapTextBacktracksToLastSpace(t *testing.T) {
	got := wrapText("aaaa bbbb", 6)
	want := []string{"aaaa", "bbbb"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestWrapTextCJKPunctuation(t *testing.T) {
	got := wrapText("ああ、いい", 6)
	want := []string{"ああ、", "いい"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestWrapTextHardBreak(t *testing.T) {
	got := wrapText("abcdefgh", 3)
	want := []string{"abc", "def", "gh"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestWrapTextNeverExceedsWidth(t *testing.T) {
	text := "それはタップではありません。指が上下左右にぶれないように軽く触れてください。"
	for _, line := range wrapText(text, 20) {
		if w := runewidth.StringWidth(line); w > 20 {
			t.Fatalf("line %q is %d cells wide", line, w)
		}
	}
}

func TestWrapTextEmpty(t *testing.T) {
	got := wrapText("", 10)
	if len(got) != 1 || got[0] != "" {
		t.Fatalf("expected single empty line, got %q", got)
	}
}
