package iocli

import (
	"bufio"
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStdio(input string) (*Stdio, *bytes.Buffer) {
	var out bytes.Buffer
	return &Stdio{
		in:  bufio.NewReader(strings.NewReader(input)),
		out: &out,
		fd:  -1, // не терминал
	}, &out
}

// Проверяем что NewStdio возвращает валидный объект
func TestNewStdio(t *testing.T) {
	stdio := NewStdio()
	assert.NotNil(t, stdio)
}

func TestPrintlnAndPrintf(t *testing.T) {
	stdio, out := newTestStdio("")

	stdio.Println("hello", "world")
	stdio.Printf("test %d %s", 1, "abc")
	_, err := stdio.Write([]byte("!"))
	require.NoError(t, err)

	assert.Equal(t, "hello world\ntest 1 abc!", out.String())
}

func TestReadInput(t *testing.T) {
	stdio, out := newTestStdio("user input\nsecond\n")

	result, err := stdio.ReadInput("Prompt: ")
	require.NoError(t, err)
	assert.Equal(t, "user input", result)
	assert.Equal(t, "Prompt: ", out.String())

	// буфер не теряет следующую строку
	result, err = stdio.ReadInput("")
	require.NoError(t, err)
	assert.Equal(t, "second", result)
}

func TestReadInput_LastLineWithoutNewline(t *testing.T) {
	stdio, _ := newTestStdio("tail")

	result, err := stdio.ReadInput("")
	require.NoError(t, err)
	assert.Equal(t, "tail", result)

	_, err = stdio.ReadInput("")
	require.Error(t, err)
}

func TestReadPassword_NotTerminal(t *testing.T) {
	stdio, _ := newTestStdio("s3cret\n")

	pw, err := stdio.ReadPassword("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", pw)
}

func TestReadAll(t *testing.T) {
	stdio, _ := newTestStdio("line1\nline2\n")

	text, err := stdio.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2\n", text)
}

// Тест ReadInput через реальный os.Stdin
func TestReadInput_Stdin(t *testing.T) {
	input := "user input\n"
	r, w, err := os.Pipe()
	require.NoError(t, err)

	// Пишем в pipe в отдельной горутине, имитируя ввод пользователя
	go func() {
		_, _ = w.Write([]byte(input))
		_ = w.Close()
	}()

	oldStdin := os.Stdin
	defer func() { os.Stdin = oldStdin }()
	os.Stdin = r

	stdio := NewStdio()
	result, err := stdio.ReadInput("")
	assert.NoError(t, err)
	assert.Equal(t, strings.TrimSpace(input), result)
}
