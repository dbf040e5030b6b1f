package syncer

import (
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcome_Constructors(t *testing.T) {
	ok := Success("synchronized: %d vehicles", 3)
	assert.True(t, ok.OK())
	assert.False(t, ok.Deferred)
	assert.Equal(t, "synchronized: 3 vehicles", ok.Message)

	def := Deferredf("saved locally")
	assert.False(t, def.OK())
	assert.True(t, def.Deferred)
	assert.ErrorIs(t, def.Err, ErrOffline)

	cause := errors.New("throttled")
	fail := Failure(cause, "")
	assert.False(t, fail.OK())
	assert.ErrorIs(t, fail.Err, cause)
	assert.Equal(t, "throttled", fail.Message)

	withMsg := Failure(cause, "something broke")
	assert.Equal(t, "something broke", withMsg.Message)
}

func TestHostUnreachable(t *testing.T) {
	assert.True(t, hostUnreachable(&net.DNSError{Name: "example.com"}))
	assert.True(t, hostUnreachable(&net.OpError{Op: "dial"}))
	assert.False(t, hostUnreachable(errors.New("validation error")))
	assert.True(t, hostUnreachable(
		errors.Join(errors.New("request failed"), &net.DNSError{Name: "x"})))
}
