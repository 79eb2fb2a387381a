package notify

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Console(t *testing.T) {
	n, err := New("console", "")
	assert.NoError(t, err)
	assert.IsType(t, &Console{}, n)
}

func TestNew_Email(t *testing.T) {
	n, err := New("email", "alice@example.com")
	assert.NoError(t, err)
	assert.IsType(t, &Email{}, n)
}

func TestNew_EmailWithoutAddress(t *testing.T) {
	_, err := New("email", "")
	assert.ErrorIs(t, err, ErrMissingAddress)
}

func TestNew_UnknownChannel(t *testing.T) {
	_, err := New("fax", "")
	assert.ErrorIs(t, err, ErrUnknownChannel)
	assert.Contains(t, err.Error(), "fax")
}

func TestConsoleSend(t *testing.T) {
	var buf bytes.Buffer
	n := &Console{Out: &buf}

	err := n.Send("Hey alice! Today (2025-01-20) is Bob's birthday!")
	assert.NoError(t, err)
	assert.Equal(t, "Hey alice! Today (2025-01-20) is Bob's birthday!\n", buf.String())
}

func TestEmailSend(t *testing.T) {
	var buf bytes.Buffer
	n := &Email{Address: "alice@example.com", Out: &buf}

	err := n.Send("Bob's birthday is in 4 days")
	assert.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "To: alice@example.com")
	assert.Contains(t, out, "Subject: Birthday reminder")
	assert.Contains(t, out, "Message-ID: <")
	assert.Contains(t, out, "Bob's birthday is in 4 days")
}
