package antivirus

import (
	"bufio"
	"bytes"
	"context"
	"encoding/binary"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClamd accepts one connection, reassembles the INSTREAM chunks and
// answers with reply.
func fakeClamd(t *testing.T, reply string) (string, <-chan []byte) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	received := make(chan []byte, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		r := bufio.NewReader(conn)
		if _, err := r.ReadString(0); err != nil {
			return
		}
		var body bytes.Buffer
		for {
			var size uint32
			if err := binary.Read(r, binary.BigEndian, &size); err != nil {
				return
			}
			if size == 0 {
				break
			}
			if _, err := io.CopyN(&body, r, int64(size)); err != nil {
				return
			}
		}
		received <- body.Bytes()
		_, _ = conn.Write([]byte(reply + "\x00"))
	}()
	return ln.Addr().String(), received
}

func TestClamAVScanner_Clean(t *testing.T) {
	addr, received := fakeClamd(t, "stream: OK")
	scanner := NewClamAVScanner(addr, 2*time.Second)

	data := bytes.Repeat([]byte("v"), chunkSize*2+10)
	res := scanner.Scan(context.Background(), "demo.mp4", bytes.NewReader(data))

	assert.NoError(t, res.Error)
	assert.False(t, res.Infected)
	assert.Equal(t, data, <-received)
}

func TestClamAVScanner_Infected(t *testing.T) {
	addr, _ := fakeClamd(t, "stream: Eicar-Signature FOUND")
	scanner := NewClamAVScanner(addr, 2*time.Second)

	res := scanner.Scan(context.Background(), "demo.mp4", bytes.NewReader([]byte("X5O!P%@AP")))

	assert.NoError(t, res.Error)
	assert.True(t, res.Infected)
	assert.Equal(t, "Eicar-Signature", res.ThreatName)
}

func TestClamAVScanner_UnreachableFailsClosed(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	ln.Close()

	res := NewClamAVScanner(addr, time.Second).Scan(context.Background(), "demo.mp4", bytes.NewReader([]byte("x")))

	assert.True(t, res.Infected)
	assert.Error(t, res.Error)
}

func TestParseReply(t *testing.T) {
	tests := []struct {
		reply    string
		infected bool
		hasErr   bool
	}{
		{"stream: OK", false, false},
		{"stream: Win.Test.EICAR_HDB-1 FOUND", true, false},
		{"INSTREAM size limit exceeded. ERROR", true, true},
		{"", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.reply, func(t *testing.T) {
			res := parseReply(ScanResult{}, tt.reply)
			assert.Equal(t, tt.infected, res.Infected)
			assert.Equal(t, tt.hasErr, res.Error != nil)
		})
	}
}
