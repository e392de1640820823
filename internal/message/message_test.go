package message

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessagePrefixes(t *testing.T) {
	var buf bytes.Buffer
	SetNoColor(true)
	SetOutput(&buf)
	t.Cleanup(func() {
		SetNoColor(false)
		SetOutput(os.Stdout)
	})

	Info("collecting %s", "demo-proj")
	Success("written")
	Warning("exists")
	Error("denied")

	out := buf.String()
	assert.Contains(t, out, "[*] collecting demo-proj\n")
	assert.Contains(t, out, "[+] written\n")
	assert.Contains(t, out, "[!] exists\n")
	assert.Contains(t, out, "[-] denied\n")
}

func TestQuietSuppressesAllButErrors(t *testing.T) {
	var buf bytes.Buffer
	SetNoColor(true)
	SetOutput(&buf)
	SetQuiet(true)
	t.Cleanup(func() {
		SetQuiet(false)
		SetNoColor(false)
		SetOutput(os.Stdout)
	})

	Info("hidden")
	Success("hidden")
	Warning("hidden")
	Section("hidden")
	Banner()
	Error("still shown")

	assert.Equal(t, "[-] still shown\n", buf.String())
}
