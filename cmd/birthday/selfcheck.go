package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jeanpaul/birthday/internal/birthday"
	"github.com/jeanpaul/birthday/internal/notify"
	"github.com/jeanpaul/birthday/internal/store"
	"github.com/jeanpaul/birthday/internal/tui"
)

// runSelfCheck exercises the store, reminder window and notifier selection
// against a throwaway file. Returns the process exit code.
func runSelfCheck(out io.Writer) int {
	fmt.Fprintln(out, tui.BannerStyle.Render("  Self-check"))
	fmt.Fprintln(out)

	dir, err := os.MkdirTemp("", "birthday-selfcheck")
	if err != nil {
		fmt.Fprintln(out, tui.ErrorStyle.Render("✗ temp dir: "+err.Error()))
		return 1
	}
	defer os.RemoveAll(dir)

	failures := 0
	check := func(name string, err error) {
		if err != nil {
			failures++
			fmt.Fprintf(out, "  %s %s: %s\n", tui.ErrorStyle.Render("✗"), name, err)
			return
		}
		fmt.Fprintf(out, "  %s %s\n", tui.BannerStyle.Render("✓"), name)
	}

	path := filepath.Join(dir, "birthdays.json")
	st, err := store.Open(path)
	check("open empty store", err)
	if err != nil {
		return 1
	}

	check("add birthday", st.Add("alice", "Bob", 24, 1))

	check("reject invalid date", func() error {
		if err := st.Add("alice", "Nope", 31, 2); err == nil {
			return errors.New("Feb 31 was accepted")
		}
		return nil
	}())

	check("list round-trip", func() error {
		reopened, err := store.Open(path)
		if err != nil {
			return err
		}
		entries := reopened.List("alice")
		if len(entries) != 1 || entries[0] != (birthday.Birthday{Name: "Bob", Day: 24, Month: 1}) {
			return fmt.Errorf("unexpected entries: %v", entries)
		}
		return nil
	}())

	check("reminder window", func() error {
		today := time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC)
		rems := birthday.Upcoming(st.List("alice"), today, 7)
		if len(rems) != 1 || rems[0].DaysUntil != 4 {
			return fmt.Errorf("expected Bob at 4 days, got %v", rems)
		}
		return nil
	}())

	check("console notifier", func() error {
		var buf bytes.Buffer
		n := &notify.Console{Out: &buf}
		if err := n.Send("ping"); err != nil {
			return err
		}
		if !strings.Contains(buf.String(), "ping") {
			return errors.New("message not written")
		}
		return nil
	}())

	check("unknown channel rejected", func() error {
		if _, err := notify.New("fax", ""); !errors.Is(err, notify.ErrUnknownChannel) {
			return fmt.Errorf("expected ErrUnknownChannel, got %v", err)
		}
		return nil
	}())

	check("remove missing contact", func() error {
		if err := st.Remove("alice", "Ghost"); !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("expected ErrNotFound, got %v", err)
		}
		return nil
	}())

	fmt.Fprintln(out)
	if failures > 0 {
		fmt.Fprintln(out, tui.ErrorStyle.Render(fmt.Sprintf("  %d check(s) failed", failures)))
		return 1
	}
	fmt.Fprintln(out, tui.BannerStyle.Render("  All checks passed"))
	return 0
}
