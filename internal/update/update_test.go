package update

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNewer(t *testing.T) {
	assert.True(t, IsNewer("0.2.0", "0.1.9"))
	assert.True(t, IsNewer("v1.10.0", "1.9.3"))
	assert.True(t, IsNewer("1.0.0", "1.0.0-rc.1"))
	assert.False(t, IsNewer("1.0.0-rc.1", "1.0.0"))
	assert.False(t, IsNewer("0.1.0", "0.1.0"))
	assert.False(t, IsNewer("0.1.0", "0.2.0"))
	assert.True(t, IsNewer("nightly", "0.1.0"))
	assert.False(t, IsNewer("dev", "dev"))
}

func TestParseOutdated(t *testing.T) {
	data := []byte(`{"formulae":[{"name":"git","current_version":"2.44.0"},{"name":"bbq","installed_versions":["0.1.0"],"current_version":"0.2.0"}],"casks":[]}`)
	latest, ok := parseOutdated(data)
	assert.True(t, ok)
	assert.Equal(t, "0.2.0", latest)

	_, ok = parseOutdated([]byte(`{"formulae":[]}`))
	assert.False(t, ok)
	_, ok = parseOutdated([]byte(`not json`))
	assert.False(t, ok)
}

type brewCommander struct {
	out []byte
	err error
}

func (b *brewCommander) Run(name string, args ...string) ([]byte, error) { return b.out, b.err }

func (b *brewCommander) RunDir(dir, name string, args ...string) ([]byte, error) {
	return b.out, b.err
}

func (b *brewCommander) Start(dir, name string, args ...string) error { return nil }

func TestUpgradeErrors(t *testing.T) {
	brew := &Brew{Cmd: &brewCommander{err: exec.ErrNotFound}}
	err := brew.Upgrade()
	assert.EqualError(t, err, "Failed to run brew: "+exec.ErrNotFound.Error())

	brew = &Brew{Cmd: &brewCommander{err: errors.New("boom")}}
	assert.Error(t, brew.Upgrade())

	brew = &Brew{Cmd: &brewCommander{}}
	assert.NoError(t, brew.Upgrade())
}

func TestLatest(t *testing.T) {
	brew := &Brew{Cmd: &brewCommander{out: []byte(`{"formulae":[{"name":"bbq","current_version":"1.4.0"}]}`)}}
	latest, ok := brew.Latest()
	assert.True(t, ok)
	assert.Equal(t, "1.4.0", latest)
}
