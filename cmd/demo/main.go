// Command demo exercises the rendering pipeline end to end: a three-row
// layout split, a live tick-driven counter, and quit-on-key handling.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/wfouche/tamboui-sub004/backend"
	"github.com/wfouche/tamboui-sub004/frame"
	"github.com/wfouche/tamboui-sub004/input"
	"github.com/wfouche/tamboui-sub004/layout"
	"github.com/wfouche/tamboui-sub004/signals"
	"github.com/wfouche/tamboui-sub004/style"
)

func main() {
	ansi := backend.NewANSI(os.Stdout)
	term, err := frame.NewTerminal(ansi, frame.Config{
		Viewport: frame.Fullscreen(),
		RawMode:  true,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "demo:", err)
		os.Exit(1)
	}
	defer term.Close()

	count := signals.New(0)
	quit := make(chan struct{})

	reader := input.Start(os.Stdin, input.Options{
		TickRate: 1 * time.Second,
		Size: func() (int, int, error) {
			s, err := ansi.Size()
			return s.Width, s.Height, err
		},
	})
	defer reader.Stop()

	rows := layout.New(layout.Vertical,
		layout.Length(1),
		layout.Fill(1),
		layout.Length(1),
	)

	render := func() {
		term.Draw(func(f *frame.Frame) error {
			areas, err := layout.Split(f.Area(), rows)
			if err != nil {
				return err
			}
			header, body, footer := areas[0], areas[1], areas[2]

			f.Buffer().SetString(header.X, header.Y, "tamboui demo", style.Default.WithAdd(style.Bold))
			f.Buffer().SetString(body.X, body.Y, fmt.Sprintf("tick count: %d", count.Get()), style.Default)
			f.Buffer().SetString(footer.X, footer.Y, "press q to quit", style.Default.WithAdd(style.Dim))
			return nil
		})
	}

	render()
	for {
		select {
		case ev := <-reader.Events():
			switch ev.Kind {
			case input.EventTick:
				count.Set(count.Get() + 1)
				render()
			case input.EventResize:
				render()
			case input.EventKey:
				if ev.Key.Key == input.KeyChar && ev.Key.Rune == 'q' {
					close(quit)
				}
			}
		case <-quit:
			return
		}
	}
}
