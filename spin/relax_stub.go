// relax_stub.go - Fallback no-op for cpuRelax on targets without a PAUSE/YIELD
//
// RISC-V, MIPS, PowerPC, s390x, WASM and noasm builds spin at full speed.
// The empty body is eliminated when inlined.

//go:build (!amd64 && !arm64) || noasm

package spin

//go:nosplit
func cpuRelax() {}
