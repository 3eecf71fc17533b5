// Package client implements the terminal front end: it parses
// '#command' lines into wire records and renders incoming records as
// text.
package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/hallchat/hallchat-server/internal/proto"
)

// Run connects to the server at addr and bridges the terminal to the
// wire protocol until the user quits, stdin closes, or the connection
// drops. The server bootstraps the session (identity, MainHall) on its
// own; the client only reacts to records.
func Run(ctx context.Context, addr string, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, addr, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	st := NewState(addr)

	readErr := make(chan error, 1)
	go func() {
		readErr <- readLoop(ctx, conn, st, out)
	}()

	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			line := scanner.Text()
			if strings.TrimSpace(line) == "" {
				continue
			}
			record, parseErr := ParseLine(line)
			if parseErr != nil {
				fmt.Fprintln(out, parseErr)
				continue
			}
			if writeErr := wsjson.Write(ctx, conn, record); writeErr != nil {
				return
			}
		}
		// stdin closed: ask the server for a clean departure. The read
		// loop ends when our own departure record arrives.
		_ = wsjson.Write(ctx, conn, proto.Inbound{Type: proto.TypeQuit})
	}()

	err = <-readErr
	cancel()
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, io.EOF) {
		if websocket.CloseStatus(err) == websocket.StatusNormalClosure {
			return nil
		}
		return err
	}
	return nil
}

func readLoop(ctx context.Context, conn *websocket.Conn, st *State, out io.Writer) error {
	for {
		var record proto.Outbound
		if err := wsjson.Read(ctx, conn, &record); err != nil {
			return err
		}

		line, done := st.Apply(record)
		if line != "" {
			fmt.Fprintln(out, line)
		}
		if done {
			return nil
		}
		if prompt, ok := st.Prompt(); ok {
			fmt.Fprint(out, prompt)
		}
	}
}
