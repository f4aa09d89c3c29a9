package antivirus

import (
	"bufio"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"time"
)

// clamd rejects chunks above StreamMaxLength; stay well below the default.
const chunkSize = 64 << 10

// ClamAVScanner streams content to a clamd daemon with the INSTREAM command.
type ClamAVScanner struct {
	address string // TCP address (host:port) or Unix socket path
	timeout time.Duration
}

var _ Scanner = (*ClamAVScanner)(nil)

// NewClamAVScanner creates a ClamAV scanner.
// address: TCP "localhost:3310" or Unix socket "/var/run/clamav/clamd.sock"
func NewClamAVScanner(address string, timeout time.Duration) *ClamAVScanner {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &ClamAVScanner{address: address, timeout: timeout}
}

func (c *ClamAVScanner) Name() string {
	return "clamav"
}

func (c *ClamAVScanner) dial(ctx context.Context) (net.Conn, error) {
	network := "tcp"
	if strings.HasPrefix(c.address, "/") {
		network = "unix"
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var d net.Dialer
	conn, err := d.DialContext(ctx, network, c.address)
	if err != nil {
		return nil, err
	}
	deadline := time.Now().Add(c.timeout)
	if dl, ok := ctx.Deadline(); ok && dl.Before(deadline) {
		deadline = dl
	}
	_ = conn.SetDeadline(deadline)
	return conn, nil
}

// Ping checks that clamd answers.
func (c *ClamAVScanner) Ping(ctx context.Context) error {
	conn, err := c.dial(ctx)
	if err != nil {
		return fmt.Errorf("clamd unreachable: %w", err)
	}
	defer conn.Close()

	if _, err := conn.Write([]byte("zPING\x00")); err != nil {
		return fmt.Errorf("clamd ping: %w", err)
	}
	reply, err := readReply(conn)
	if err != nil {
		return fmt.Errorf("clamd ping: %w", err)
	}
	if reply != "PONG" {
		return fmt.Errorf("clamd ping: unexpected reply %q", reply)
	}
	return nil
}

// Scan streams data to clamd in chunks.
func (c *ClamAVScanner) Scan(ctx context.Context, filename string, data io.Reader) ScanResult {
	result := ScanResult{ScannerName: c.Name()}
	fail := func(err error) ScanResult {
		result.Infected = true // Fail closed
		result.Error = err
		return result
	}

	conn, err := c.dial(ctx)
	if err != nil {
		return fail(fmt.Errorf("failed to connect to clamd: %w", err))
	}
	defer conn.Close()

	if _, err := conn.Write([]byte("zINSTREAM\x00")); err != nil {
		return fail(fmt.Errorf("failed to send command: %w", err))
	}

	w := bufio.NewWriterSize(conn, chunkSize+4)
	buf := make([]byte, chunkSize)
	var size [4]byte
	for {
		n, readErr := data.Read(buf)
		if n > 0 {
			binary.BigEndian.PutUint32(size[:], uint32(n))
			if _, err := w.Write(size[:]); err != nil {
				return fail(fmt.Errorf("failed to send chunk size: %w", err))
			}
			if _, err := w.Write(buf[:n]); err != nil {
				return fail(fmt.Errorf("failed to send %s: %w", filename, err))
			}
		}
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return fail(fmt.Errorf("failed to read %s: %w", filename, readErr))
		}
	}
	// zero-length chunk terminates the stream
	binary.BigEndian.PutUint32(size[:], 0)
	if _, err := w.Write(size[:]); err != nil {
		return fail(fmt.Errorf("failed to send end marker: %w", err))
	}
	if err := w.Flush(); err != nil {
		return fail(fmt.Errorf("failed to send %s: %w", filename, err))
	}

	reply, err := readReply(conn)
	if err != nil {
		return fail(fmt.Errorf("failed to read response: %w", err))
	}
	return parseReply(result, reply)
}

func readReply(r io.Reader) (string, error) {
	reply, err := bufio.NewReader(r).ReadString(0)
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(strings.TrimRight(reply, "\x00")), nil
}

// parseReply interprets "stream: OK", "stream: <threat> FOUND" and
// "<message> ERROR" replies.
func parseReply(result ScanResult, reply string) ScanResult {
	switch {
	case strings.HasSuffix(reply, "FOUND"):
		result.Infected = true
		threat := reply
		if _, after, ok := strings.Cut(reply, ":"); ok {
			threat = after
		}
		result.ThreatName = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(threat), "FOUND"))
	case strings.HasSuffix(reply, "OK"):
	case reply == "":
		result.Infected = true
		result.Error = errors.New("empty reply from clamd")
	default:
		result.Infected = true
		result.Error = fmt.Errorf("scan error: %s", reply)
	}
	return result
}
