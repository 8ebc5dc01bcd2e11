package bootstrap

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// NewClientVMCheck checks for a client (non-server) VM identifier.
func NewClientVMCheck(vmName StringProbe) Check {
	violated := func() bool {
		return strings.Contains(vmName(), "Client VM")
	}
	diagnostic := func() string {
		return fmt.Sprintf(
			"JVM is using the client VM [%s] but should be using a server VM for the best performance",
			vmName())
	}
	return newCheck("client_vm", violated, diagnostic, false)
}

// NewSerialGCCheck checks for the serial garbage collector.
func NewSerialGCCheck(useSerialGC StringProbe) Check {
	violated := func() bool {
		return useSerialGC() == "true"
	}
	diagnostic := func() string {
		return "JVM is using the serial collector but should not be for the best performance; " +
			"check the start up flags to confirm that a throughput collector is being used"
	}
	return newCheck("serial_gc", violated, diagnostic, false)
}

// g1gcVersionPattern accepts the Java 8 version-string shape this
// check gates on: "25.<update>-b<build>". Any other shape is
// non-violating.
var g1gcVersionPattern = regexp.MustCompile(`^25\.(\d+)-b\d+$`)

// NewG1GCVersionCheck gates a known G1GC heap-corruption range on old JVMs: violates iff the
// vendor starts with "Oracle", G1GC is enabled, the runtime reports
// Java 8, and the version string parses as 25.<update>-b<build> with
// update < 40. Against amanmcp's own Go-runtime adapter, jvmVendor
// never starts with "Oracle", so this check is permanently
// non-violating without any special-casing here — the check logic is
// left deliberately loose to match the upstream gate this check models.
func NewG1GCVersionCheck(jvmVendor StringProbe, isG1GCEnabled BoolProbe, jvmVersion StringProbe, isJava8 BoolProbe) Check {
	violates := func() bool {
		if !strings.HasPrefix(jvmVendor(), "Oracle") {
			return false
		}
		if !isG1GCEnabled() {
			return false
		}
		if !isJava8() {
			return false
		}
		m := g1gcVersionPattern.FindStringSubmatch(jvmVersion())
		if m == nil {
			return false
		}
		update, err := strconv.Atoi(m[1])
		if err != nil {
			return false
		}
		return update < 40
	}
	diagnostic := func() string {
		return fmt.Sprintf(
			"JVM version [%s] can cause data corruption when used with G1GC; upgrade to at least Java 8u40",
			jvmVersion())
	}
	return newCheck("g1gc_version", violates, diagnostic, false)
}
