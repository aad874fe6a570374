package printing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewPrinterDefaults(t *testing.T) {
	p := NewPrinter("/usr/bin/chromium")
	assert.Equal(t, "/usr/bin/chromium", p.ChromePath)
	assert.Equal(t, DefaultTimeout, p.Timeout)
}

func TestNewPrinterEmptyPath(t *testing.T) {
	p := NewPrinter("")
	assert.Empty(t, p.ChromePath)
	assert.Equal(t, 60*time.Second, p.Timeout)
}

func TestPrintErrorUnwrap(t *testing.T) {
	cause := errors.New("browser exited")
	err := &PrintError{Message: "headless Chrome print failed", Cause: cause}

	assert.Contains(t, err.Error(), "headless Chrome print failed")
	assert.Contains(t, err.Error(), "browser exited")
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestPrintErrorWithoutCause(t *testing.T) {
	err := &PrintError{Message: "failed to write temp HTML"}
	assert.Equal(t, "print error: failed to write temp HTML", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}
