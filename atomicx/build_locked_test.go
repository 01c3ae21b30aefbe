//go:build mips || mipsle || lockedatomics

package atomicx

const lockedBuild = true
