package fastview

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	channerics "github.com/niceyeti/channerics/channels"
	"golang.org/x/sync/errgroup"
)

const (
	// writeWait bounds how long a single websocket write may take.
	writeWait = 1 * time.Second

	// pubResolution throttles how often a dashboard push reaches a
	// browser tab; updates arriving faster than this are coalesced by
	// the dashboard's own fan-in before they ever reach publish.
	pubResolution = time.Millisecond * 100
	pingResolution = time.Millisecond * 200
	// pongWait is the liveness window: lose this many missed pongs in a
	// row and the browser tab is presumed gone.
	pongWait = pingResolution * 4
)

var upgrader = websocket.Upgrader{}

// client publishes one connected dashboard tab's update stream over its
// websocket, reading only to detect disconnects (the page never sends
// commands back). Updates carries already-coalesced batches of
// fastview.EleUpdate, so client treats T as an opaque, idempotent
// snapshot: if the browser falls behind, only the latest matters.
type client[T any] struct {
	updates <-chan T
	conn    *guardedConn
	rootCtx context.Context
}

// NewClient upgrades an incoming HTTP request to a websocket and returns
// a publisher that will stream updates to it once Sync is called.
func NewClient[T any](
	updates <-chan T,
	w http.ResponseWriter,
	r *http.Request,
) (*client[T], error) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil, err
	}

	return &client[T]{
		updates: updates,
		conn:    newGuardedConn(ws),
		rootCtx: r.Context(),
	}, nil
}

// Sync runs the publish loop and its supporting ping/pong liveness check
// and disconnect-detecting reader until the connection closes or the
// request context is cancelled, whichever comes first.
func (cli *client[T]) Sync() error {
	group, groupCtx := errgroup.WithContext(cli.rootCtx)

	group.Go(func() error { return cli.watchForDisconnect(groupCtx) })
	group.Go(func() error { return cli.keepAlive(groupCtx) })
	group.Go(func() error { return cli.publish(groupCtx) })

	return group.Wait()
}

// ErrPongDeadlineExceeded reports that the browser tab stopped answering
// pings, so the connection should be torn down.
var ErrPongDeadlineExceeded error = errors.New("client disconnect, pong deadline exceeded")

// keepAlive pings the browser on a fixed interval and watches for a pong
// within pongWait, requiring the reader goroutine to already be pumping
// incoming control frames to the pong handler.
func (cli *client[T]) keepAlive(ctx context.Context) error {
	pong := make(chan struct{})
	defer close(pong)
	cli.conn.raw.SetPongHandler(func(_ string) error {
		pong <- struct{}{}
		return nil
	})

	ticks := channerics.NewTicker(ctx.Done(), pingResolution)
	lastPong := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticks:
			if time.Since(lastPong) > pongWait {
				return ErrPongDeadlineExceeded
			}
			if err := cli.ping(ctx); err != nil {
				return err
			}
		case <-pong:
			lastPong = time.Now()
		}
	}
}

func (cli *client[T]) ping(ctx context.Context) error {
	return cli.conn.write(ctx, func(ws *websocket.Conn) error {
		if err := ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil && isUnexpectedClose(err) {
			return fmt.Errorf("ping failed: %T %v", err, err)
		}
		return nil
	})
}

// watchForDisconnect blocks on reads from the browser. The dashboard page
// never sends anything meaningful, but a read is required to pump pong
// control frames to keepAlive's handler and to notice a closed connection.
func (cli *client[T]) watchForDisconnect(ctx context.Context) error {
	for {
		err := cli.conn.read(ctx, func(ws *websocket.Conn) error {
			_, _, readErr := ws.ReadMessage()
			return readErr
		})
		if err != nil {
			return err
		}
	}
}

// publish streams update batches to the browser at pubResolution,
// dropping any that arrive faster than that rate.
func (cli *client[T]) publish(ctx context.Context) error {
	lastSent := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-cli.updates:
			if !ok {
				return nil
			}
			if time.Since(lastSent) < pubResolution {
				continue
			}
			lastSent = time.Now()

			err := cli.conn.write(ctx, func(ws *websocket.Conn) error {
				if err := ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
					return fmt.Errorf("set write deadline: %w", err)
				}
				if err := ws.WriteJSON(update); err != nil && isUnexpectedClose(err) {
					return fmt.Errorf("publish failed: %T %v", err, err)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
	}
}

func isUnexpectedClose(err error) bool {
	return err != nil && websocket.IsUnexpectedCloseError(
		err,
		websocket.CloseNormalClosure,
		websocket.CloseGoingAway)
}

// ErrConnBusy is returned when a read or write couldn't acquire its slot
// on the connection before its deadline, meaning something upstream is
// stuck.
var ErrConnBusy = errors.New("websocket op failed: connection busy")

const (
	readDeadline     = time.Second
	writeDeadline    = time.Second
	closeGracePeriod = 10 * time.Second
)

// guardedConn enforces the gorilla/websocket requirement that at most one
// reader and one writer run concurrently against a *websocket.Conn, using
// buffered channels as binary semaphores rather than a sync.Mutex so the
// wait can be bounded by a deadline or cancelled by ctx.
type guardedConn struct {
	readSlot  chan struct{}
	writeSlot chan struct{}
	raw       *websocket.Conn
}

func newGuardedConn(ws *websocket.Conn) *guardedConn {
	return &guardedConn{
		readSlot:  make(chan struct{}, 1),
		writeSlot: make(chan struct{}, 1),
		raw:       ws,
	}
}

// close sends a close frame and waits out the grace period before
// dropping the underlying connection. Only safe to call once no other
// reader or writer remains.
func (c *guardedConn) close() {
	c.readSlot <- struct{}{}
	c.writeSlot <- struct{}{}

	_ = c.raw.SetWriteDeadline(time.Now().Add(writeWait))
	_ = c.raw.WriteMessage(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	time.Sleep(closeGracePeriod)
	c.raw.Close()
}

func (c *guardedConn) read(ctx context.Context, readFn func(*websocket.Conn) error) error {
	select {
	case <-ctx.Done():
		return nil
	case c.readSlot <- struct{}{}:
		defer func() { <-c.readSlot }()
		return readFn(c.raw)
	case <-time.After(readDeadline):
		return ErrConnBusy
	}
}

func (c *guardedConn) write(ctx context.Context, writeFn func(*websocket.Conn) error) error {
	select {
	case <-ctx.Done():
		return nil
	case c.writeSlot <- struct{}{}:
		defer func() { <-c.writeSlot }()
		return writeFn(c.raw)
	case <-time.After(writeDeadline):
		return ErrConnBusy
	}
}
