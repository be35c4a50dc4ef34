package mailer

import (
	"bufio"
	"context"
	"io"
	"mime"
	"mime/quotedprintable"
	"net"
	"net/mail"
	"net/textproto"
	"strconv"
	"strings"
	"testing"
	"time"

	"bakeryBooker/internal/config"
	"bakeryBooker/internal/notifier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type session struct {
	commands []string
	data     string
}

// fakeServer accepts one SMTP session on loopback. rcptReply overrides the
// answer to RCPT TO when set.
func fakeServer(t *testing.T, rcptReply string) (string, int, <-chan session) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	done := make(chan session, 1)

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		var s session
		defer func() { done <- s }()

		tp := textproto.NewConn(conn)
		reply := func(line string) { _ = tp.PrintfLine("%s", line) }

		reply("220 127.0.0.1 ESMTP test")

		for {
			line, err := tp.ReadLine()
			if err != nil {
				return
			}
			s.commands = append(s.commands, line)

			verb := strings.ToUpper(strings.SplitN(line, " ", 2)[0])
			switch verb {
			case "EHLO":
				reply("250-127.0.0.1")
				reply("250 AUTH PLAIN")
			case "AUTH":
				reply("235 2.7.0 Authentication successful")
			case "MAIL":
				reply("250 OK")
			case "RCPT":
				if rcptReply != "" {
					reply(rcptReply)
					continue
				}
				reply("250 OK")
			case "DATA":
				reply("354 Go ahead")
				b, err := tp.ReadDotBytes()
				if err != nil {
					return
				}
				s.data = string(b)
				reply("250 OK queued")
			case "QUIT":
				reply("221 Bye")
				return
			default:
				reply("502 not implemented")
			}
		}
	}()

	addr := ln.Addr().(*net.TCPAddr)

	return addr.IP.String(), addr.Port, done
}

func newSender(host string, port int) *Sender {
	s := New(config.Mail{
		Host:     host,
		Port:     port,
		User:     "pasticceria@example.com",
		Password: "secret",
		From:     "pasticceria@example.com",
		Timeout:  2 * time.Second,
	})
	s.now = func() time.Time { return time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC) }

	return s
}

func TestSend(t *testing.T) {
	t.Parallel()

	host, port, done := fakeServer(t, "")
	s := newSender(host, port)

	err := s.Send(context.Background(), notifier.Message{
		To:      "a@x.com",
		Subject: "Conferma prenotazione tavolo",
		Body:    "Ciao Anna, la tua prenotazione per il 2025-06-01 alle 20:00 per 4 persone è stata CONFERMATA.",
	})
	require.NoError(t, err)

	sess := <-done

	assert.Contains(t, sess.commands, "MAIL FROM:<pasticceria@example.com>")
	assert.Contains(t, sess.commands, "RCPT TO:<a@x.com>")

	var authed bool
	for _, c := range sess.commands {
		if strings.HasPrefix(c, "AUTH PLAIN ") {
			authed = true
		}
	}
	assert.True(t, authed, "expected AUTH PLAIN, got %v", sess.commands)

	msg, err := mail.ReadMessage(strings.NewReader(sess.data))
	require.NoError(t, err)

	assert.Equal(t, "a@x.com", msg.Header.Get("To"))

	subject, err := new(mime.WordDecoder).DecodeHeader(msg.Header.Get("Subject"))
	require.NoError(t, err)
	assert.Equal(t, "Conferma prenotazione tavolo", subject)

	body, err := io.ReadAll(quotedprintable.NewReader(msg.Body))
	require.NoError(t, err)
	assert.Equal(t,
		"Ciao Anna, la tua prenotazione per il 2025-06-01 alle 20:00 per 4 persone è stata CONFERMATA.",
		strings.TrimRight(string(body), "\r\n"),
	)
}

func TestSendRejectedRecipient(t *testing.T) {
	t.Parallel()

	host, port, _ := fakeServer(t, "550 5.1.1 mailbox unavailable")
	s := newSender(host, port)

	err := s.Send(context.Background(), notifier.Message{To: "nobody@x.com", Subject: "s", Body: "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rcpt to")
}

func TestSendTimeout(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		// never greet
		_, _ = bufio.NewReader(conn).ReadString('\n')
	}()

	addr := ln.Addr().(*net.TCPAddr)
	s := newSender(addr.IP.String(), addr.Port)
	s.timeout = 100 * time.Millisecond

	start := time.Now()
	err = s.Send(context.Background(), notifier.Message{To: "a@x.com", Subject: "s", Body: "b"})
	require.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestSendUnreachable(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	s := newSender("127.0.0.1", port)

	err = s.Send(context.Background(), notifier.Message{To: "a@x.com", Subject: "s", Body: "b"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), strconv.Itoa(port))
}
