package deck

import (
	"testing"
	"time"
)

func TestSessionLogAppendAndRead(t *testing.T) {
	l := NewSessionLog()
	l.Append(RoleUser, "improve this slide", 0, "Intro")
	l.Append(RoleAI, "here you go", 0, "Intro")

	entries := l.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Role != RoleUser || entries[1].Role != RoleAI {
		t.Errorf("unexpected roles: %v %v", entries[0].Role, entries[1].Role)
	}
	if entries[0].ID == entries[1].ID {
		t.Error("entry IDs must be unique")
	}
	if entries[0].SlideTitle != "Intro" {
		t.Errorf("expected slide title recorded, got %q", entries[0].SlideTitle)
	}
}

func TestSessionLogSubscribe(t *testing.T) {
	l := NewSessionLog()
	ch, cancel := l.Subscribe()
	defer cancel()

	l.Append(RoleSystem, "generation started", -1, "")

	select {
	case e := <-ch:
		if e.Content != "generation started" {
			t.Errorf("unexpected entry %+v", e)
		}
	case <-time.After(time.Second):
		t.Fatal("subscriber did not receive entry")
	}

	cancel()
	l.Append(RoleSystem, "after cancel", -1, "")
	select {
	case e, ok := <-ch:
		if ok {
			t.Errorf("unexpected entry after cancel: %+v", e)
		}
	default:
	}
}

func TestSessionLogEntriesIsCopy(t *testing.T) {
	l := NewSessionLog()
	l.Append(RoleUser, "original", 0, "")

	entries := l.Entries()
	entries[0].Content = "mutated"

	if l.Entries()[0].Content != "original" {
		t.Error("Entries must return a copy")
	}
}
