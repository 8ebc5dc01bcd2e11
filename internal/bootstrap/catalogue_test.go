package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func syntheticInfo() HostProcessInfo {
	return HostProcessInfo{
		Host: HostDescriptor{OS: "linux", RlimInfinity: -1},
		Process: ProcessProbes{
			MaxFDCount:               func() int64 { return 100000 },
			IsMemoryLocked:           func() bool { return false },
			MaxThreads:               func() int64 { return 4096 },
			MaxAddressSpace:          func() int64 { return -1 },
			MaxMapCount:              func() int64 { return 262144 },
			IsSyscallFilterInstalled: func() bool { return false },
		},
		Runtime: GoRuntimeInfo{}.Probes(),
	}
}

func TestBuildCatalogue_DefaultConfigProducesElevenChecks(t *testing.T) {
	checks, err := BuildCatalogue(syntheticInfo(), DefaultConfig())
	require.NoError(t, err)
	assert.Len(t, checks, 11)
}

func TestBuildCatalogue_InvalidFileDescriptorFloorIsAConfigError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinFileDescriptors = -5

	_, err := BuildCatalogue(syntheticInfo(), cfg)
	require.Error(t, err)
}

func TestBuildCatalogue_CleanHostPassesUnderProduction(t *testing.T) {
	checks, err := BuildCatalogue(syntheticInfo(), DefaultConfig())
	require.NoError(t, err)

	e := NewEngine(nil)
	assert.NoError(t, e.Run(ModeProduction, checks, "serve"))
}

func TestBuildCatalogue_LowFileDescriptorsFailsUnderProduction(t *testing.T) {
	info := syntheticInfo()
	info.Process.MaxFDCount = func() int64 { return 1024 }

	checks, err := BuildCatalogue(info, DefaultConfig())
	require.NoError(t, err)

	e := NewEngine(nil)
	assert.Error(t, e.Run(ModeProduction, checks, "serve"))
}

func TestCurrentHostProcessInfo_ReturnsUsableProbes(t *testing.T) {
	info := CurrentHostProcessInfo()
	assert.NotEmpty(t, info.Host.OS)
	assert.NotNil(t, info.Process.MaxFDCount)
	assert.NotNil(t, info.Runtime.VMName)
	// The live process must build a catalogue without error.
	_, err := BuildCatalogue(info, DefaultConfig())
	assert.NoError(t, err)
}
